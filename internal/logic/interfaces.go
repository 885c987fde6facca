package logic

import (
	"context"

	"github.com/nflcentral/scores-api/internal/models"
)

// KPIService computes headline statistics over a season range
type KPIService interface {
	Compute(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error)
}

// HeadToHeadService compares two teams across their shared history
type HeadToHeadService interface {
	Compare(ctx context.Context, teamA, teamB string) (*models.H2HResult, error)
}

// AggregationService groups the table by a calendar key or by venue
type AggregationService interface {
	Aggregate(ctx context.Context, groupKey string) ([]models.GroupAggregate, error)
	TopVenues(ctx context.Context, metric string) ([]models.GroupAggregate, error)
}

// SummaryService describes the loaded dataset
type SummaryService interface {
	Summarize(ctx context.Context) (*models.DatasetSummary, error)
}
