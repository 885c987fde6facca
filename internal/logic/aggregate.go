package logic

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/models"
)

// venueLimit caps the venue view to the busiest stadiums.
const venueLimit = 20

type aggregationService struct {
	table *dataset.Table
}

func NewAggregationService(table *dataset.Table) AggregationService {
	return &aggregationService{table: table}
}

type bucket struct {
	key string
	ord int // numeric ordering for week/year keys
	sum float64
	n   int
}

// Aggregate groups the whole table by groupKey and returns one entry per
// distinct key with the game count and mean total points. Rows whose total
// points are missing carry no information for either figure and are skipped.
//
// Time keys come back chronological: "YYYY-MM" month keys sort
// lexicographically into calendar order, week and year sort numerically.
// Stadium keys keep first-encounter order; ranking them is TopVenues' job.
func (s *aggregationService) Aggregate(ctx context.Context, groupKey string) ([]models.GroupAggregate, error) {
	keyOf, numeric, err := groupKeyFunc(groupKey)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var buckets []*bucket
	for _, g := range s.table.Rows() {
		if g.TotalPoints == nil {
			continue
		}
		key, ord := keyOf(g)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, &bucket{key: key, ord: ord})
		}
		buckets[i].sum += *g.TotalPoints
		buckets[i].n++
	}

	switch {
	case groupKey == models.GroupStadium:
		// keep encounter order
	case numeric:
		sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].ord < buckets[j].ord })
	default:
		sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].key < buckets[j].key })
	}

	out := make([]models.GroupAggregate, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.GroupAggregate{
			Key:            b.key,
			Games:          b.n,
			AvgTotalPoints: b.sum / float64(b.n),
		})
	}
	return out, nil
}

// TopVenues ranks stadiums by metric, descending, and truncates to the top
// 20. The sort is stable so metric ties keep first-encounter order.
func (s *aggregationService) TopVenues(ctx context.Context, metric string) ([]models.GroupAggregate, error) {
	if metric == "" {
		metric = models.MetricGames
	}
	if metric != models.MetricGames && metric != models.MetricAvgTotalPoints {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	venues, err := s.Aggregate(ctx, models.GroupStadium)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(venues, func(i, j int) bool {
		if metric == models.MetricGames {
			return venues[i].Games > venues[j].Games
		}
		return venues[i].AvgTotalPoints > venues[j].AvgTotalPoints
	})

	if len(venues) > venueLimit {
		venues = venues[:venueLimit]
	}
	return venues, nil
}

func groupKeyFunc(groupKey string) (func(models.GameRecord) (string, int), bool, error) {
	switch groupKey {
	case models.GroupMonth:
		return func(g models.GameRecord) (string, int) { return g.MonthYear, 0 }, false, nil
	case models.GroupWeek:
		return func(g models.GameRecord) (string, int) { return strconv.Itoa(g.WeekOfYear), g.WeekOfYear }, true, nil
	case models.GroupYear:
		return func(g models.GameRecord) (string, int) { return strconv.Itoa(g.Year), g.Year }, true, nil
	case models.GroupStadium:
		return func(g models.GameRecord) (string, int) { return g.Stadium, 0 }, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownGroup, groupKey)
	}
}
