package logic

import (
	"context"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/models"
)

type kpiService struct {
	table *dataset.Table
}

func NewKPIService(table *dataset.Table) KPIService {
	return &kpiService{table: table}
}

// Compute evaluates one KPI over the games whose season falls inside rng,
// both ends inclusive. An empty filtered set returns ErrEmptyRange so the
// caller can show a notice instead of a metric.
//
// Ties (margin zero) count toward neither side of the win rate; the
// denominator is always the full filtered set.
func (s *kpiService) Compute(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
	var filtered []models.GameRecord
	for _, g := range s.table.Rows() {
		if rng.Contains(g.Season) {
			filtered = append(filtered, g)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrEmptyRange
	}

	res := &models.KPIResult{Name: name}

	switch name {
	case models.KPITotalGames:
		res.Value = float64(len(filtered))
		res.Display = humanize.Comma(int64(len(filtered)))
		res.Description = "Number of games in the selected season range."

	case models.KPIAvgTotalPoints:
		var sum float64
		var n int
		for _, g := range filtered {
			if g.TotalPoints != nil {
				sum += *g.TotalPoints
				n++
			}
		}
		// Every total missing means there is no mean to show; suppress the
		// metric rather than fabricate a zero.
		if n == 0 {
			return nil, ErrEmptyRange
		}
		res.Value = sum / float64(n)
		res.Display = fmt.Sprintf("%.1f", res.Value)
		res.Description = "Average total points per game."

	case models.KPIHomeWinRate:
		var wins int
		for _, g := range filtered {
			if g.MarginHome != nil && *g.MarginHome > 0 {
				wins++
			}
		}
		res.Value = float64(wins) / float64(len(filtered)) * 100
		res.Display = fmt.Sprintf("%.1f%%", res.Value)
		res.Description = "Percentage of games won by the home team."

	case models.KPICloseGames:
		var closeGames int
		for _, g := range filtered {
			if g.MarginHome != nil && math.Abs(*g.MarginHome) <= 3 {
				closeGames++
			}
		}
		res.Value = float64(closeGames) / float64(len(filtered)) * 100
		res.Display = fmt.Sprintf("%.1f%%", res.Value)
		res.Description = "Percentage of games decided by 3 points or fewer."

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKPI, name)
	}

	return res, nil
}
