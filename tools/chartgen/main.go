package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/logic"
	"github.com/nflcentral/scores-api/internal/models"
)

// Offline renderer for the two chart views: scoring over time and the
// top-20 stadium ranking. Output lands as PNG next to whatever static
// assets the dashboard serves.
func main() {
	dataFile := flag.String("data", "NFL_scores.csv", "path to the scores CSV")
	outDir := flag.String("out", "charts", "output directory for PNG files")
	flag.Parse()

	table, err := dataset.Load(*dataFile)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	agg := logic.NewAggregationService(table)
	ctx := context.Background()

	generateScoringTrend(ctx, agg, *outDir)
	generateVenueRanking(ctx, agg, *outDir)
}

func generateScoringTrend(ctx context.Context, agg logic.AggregationService, outDir string) {
	fmt.Println("Aggregating scoring by year...")
	points, err := agg.Aggregate(ctx, models.GroupYear)
	if err != nil {
		log.Printf("Failed to aggregate by year: %v", err)
		return
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		year, err := strconv.Atoi(p.Key)
		if err != nil {
			continue
		}
		xs = append(xs, float64(year))
		ys = append(ys, p.AvgTotalPoints)
	}
	if len(xs) == 0 {
		log.Print("No yearly data to chart")
		return
	}

	graph := chart.Chart{
		Title:  "Avg Total Points per Game by Year",
		Width:  1024,
		Height: 512,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Avg Total Points",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	saveChart(graph.Render, filepath.Join(outDir, "scoring_trend.png"))
}

func generateVenueRanking(ctx context.Context, agg logic.AggregationService, outDir string) {
	fmt.Println("Ranking venues by games played...")
	venues, err := agg.TopVenues(ctx, models.MetricGames)
	if err != nil {
		log.Printf("Failed to rank venues: %v", err)
		return
	}
	if len(venues) == 0 {
		log.Print("No venue data to chart")
		return
	}

	bars := make([]chart.Value, 0, len(venues))
	for _, v := range venues {
		bars = append(bars, chart.Value{Label: v.Key, Value: float64(v.Games)})
	}

	graph := chart.BarChart{
		Title:    "Games by Stadium (Top 20)",
		Width:    1280,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}

	saveChart(graph.Render, filepath.Join(outDir, "venue_ranking.png"))
}

func saveChart(render func(chart.RendererProvider, io.Writer) error, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Failed to create %s: %v", path, err)
		return
	}
	defer f.Close()

	if err := render(chart.PNG, f); err != nil {
		log.Printf("Failed to render %s: %v", path, err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}
