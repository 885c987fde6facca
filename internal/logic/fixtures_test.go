package logic

import (
	"strconv"
	"time"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/models"
)

// game builds a fully derived record the way the loader would.
func game(season, week int, home, away string, scoreHome, scoreAway float64) models.GameRecord {
	total := scoreHome + scoreAway
	margin := scoreHome - scoreAway
	return models.GameRecord{
		Season:      season,
		Week:        week,
		TeamHome:    home,
		TeamAway:    away,
		ScoreHome:   &scoreHome,
		ScoreAway:   &scoreAway,
		TotalPoints: &total,
		MarginHome:  &margin,
		Stadium:     "Unknown",
		Phase:       models.PhaseRegular,
		Year:        season,
		MonthYear:   strconv.Itoa(season),
		WeekOfYear:  week,
	}
}

// gameNoScores builds a record whose score cells failed numeric coercion:
// both scores and both derived metrics are missing.
func gameNoScores(season, week int, home, away string) models.GameRecord {
	g := game(season, week, home, away, 0, 0)
	g.ScoreHome, g.ScoreAway = nil, nil
	g.TotalPoints, g.MarginHome = nil, nil
	return g
}

func gameAt(g models.GameRecord, stadium string, date time.Time) models.GameRecord {
	g.Stadium = stadium
	g.ScheduleDate = &date
	g.Year = date.Year()
	g.MonthYear = date.Format("2006-01")
	_, g.WeekOfYear = date.ISOWeek()
	return g
}

func testTable(rows ...models.GameRecord) *dataset.Table {
	return dataset.NewTable(rows)
}
