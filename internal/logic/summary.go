package logic

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/models"
)

type summaryService struct {
	table *dataset.Table
}

func NewSummaryService(table *dataset.Table) SummaryService {
	return &summaryService{table: table}
}

// Summarize describes the dataset as a whole: sizes, season bounds and date
// coverage. Each independent figure fills its own field, so the fan-out
// needs no locking.
func (s *summaryService) Summarize(ctx context.Context) (*models.DatasetSummary, error) {
	sum := &models.DatasetSummary{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum.Games = s.table.Len()
		sum.Teams = len(s.table.Teams())
		sum.SeasonMin, sum.SeasonMax = s.table.SeasonBounds()
		return nil
	})

	g.Go(func() error {
		for _, r := range s.table.Rows() {
			if r.Playoff {
				sum.PlayoffGames++
			}
		}
		return nil
	})

	g.Go(func() error {
		var first, last *time.Time
		for _, r := range s.table.Rows() {
			if r.ScheduleDate == nil {
				continue
			}
			if first == nil || r.ScheduleDate.Before(*first) {
				first = r.ScheduleDate
			}
			if last == nil || r.ScheduleDate.After(*last) {
				last = r.ScheduleDate
			}
		}
		sum.FirstDate, sum.LastDate = first, last
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}
