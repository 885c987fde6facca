package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Generates a synthetic NFL_scores.csv for local development, shaped like
// the real export: required columns plus schedule_date, schedule_playoff
// and stadium, with the occasional blank cell.

var teams = []string{
	"Arizona Cardinals", "Chicago Bears", "Dallas Cowboys", "Denver Broncos",
	"Detroit Lions", "Green Bay Packers", "Kansas City Chiefs", "Miami Dolphins",
	"New England Patriots", "New York Giants", "Philadelphia Eagles",
	"Pittsburgh Steelers", "San Francisco 49ers", "Seattle Seahawks",
}

var stadiums = []string{
	"Lambeau Field", "Soldier Field", "Arrowhead Stadium", "Gillette Stadium",
	"Lincoln Financial Field", "Levi's Stadium", "Lumen Field", "",
}

func main() {
	out := flag.String("out", "NFL_scores.csv", "output file")
	seasons := flag.Int("seasons", 10, "number of seasons to generate")
	firstSeason := flag.Int("first", 2010, "first season")
	gamesPerWeek := flag.Int("games-per-week", 7, "games per regular-season week")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"schedule_date", "season", "week", "team_home", "team_away",
		"score_home", "score_away", "over_under_line", "spread_favorite",
		"stadium", "schedule_playoff",
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("write header: %v", err)
	}

	rows := 0
	for s := 0; s < *seasons; s++ {
		season := *firstSeason + s
		// 17 regular-season weeks plus 4 playoff rounds
		for week := 1; week <= 21; week++ {
			playoff := week > 17
			games := *gamesPerWeek
			if playoff {
				games = 2
			}
			kickoff := time.Date(season, time.September, 7, 0, 0, 0, 0, time.UTC).
				AddDate(0, 0, (week-1)*7)
			for g := 0; g < games; g++ {
				home := teams[rng.Intn(len(teams))]
				away := teams[rng.Intn(len(teams))]
				if home == away {
					continue
				}
				record := []string{
					kickoff.Format("2006-01-02"),
					strconv.Itoa(season),
					strconv.Itoa(week),
					home,
					away,
					strconv.Itoa(rng.Intn(45)),
					strconv.Itoa(rng.Intn(45)),
					fmt.Sprintf("%.1f", 35+rng.Float64()*20),
					fmt.Sprintf("%.1f", -(rng.Float64() * 14)),
					stadiums[rng.Intn(len(stadiums))],
					boolToken(playoff),
				}
				if err := w.Write(record); err != nil {
					log.Fatalf("write row: %v", err)
				}
				rows++
			}
		}
	}

	fmt.Printf("Wrote %d games to %s\n", rows, *out)
}

func boolToken(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
