package handlers

import (
	"context"

	"github.com/nflcentral/scores-api/internal/models"
)

// MockKPIService
type MockKPIService struct {
	ComputeFunc func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error)
}

func (m *MockKPIService) Compute(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
	if m.ComputeFunc != nil {
		return m.ComputeFunc(ctx, rng, name)
	}
	return &models.KPIResult{Name: name, Display: "0"}, nil
}

// MockHeadToHeadService
type MockHeadToHeadService struct {
	CompareFunc func(ctx context.Context, teamA, teamB string) (*models.H2HResult, error)
}

func (m *MockHeadToHeadService) Compare(ctx context.Context, teamA, teamB string) (*models.H2HResult, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, teamA, teamB)
	}
	return &models.H2HResult{TeamA: teamA, TeamB: teamB}, nil
}

// MockAggregationService
type MockAggregationService struct {
	AggregateFunc func(ctx context.Context, groupKey string) ([]models.GroupAggregate, error)
	TopVenuesFunc func(ctx context.Context, metric string) ([]models.GroupAggregate, error)
}

func (m *MockAggregationService) Aggregate(ctx context.Context, groupKey string) ([]models.GroupAggregate, error) {
	if m.AggregateFunc != nil {
		return m.AggregateFunc(ctx, groupKey)
	}
	return nil, nil
}

func (m *MockAggregationService) TopVenues(ctx context.Context, metric string) ([]models.GroupAggregate, error) {
	if m.TopVenuesFunc != nil {
		return m.TopVenuesFunc(ctx, metric)
	}
	return nil, nil
}

// MockSummaryService
type MockSummaryService struct {
	SummarizeFunc func(ctx context.Context) (*models.DatasetSummary, error)
}

func (m *MockSummaryService) Summarize(ctx context.Context) (*models.DatasetSummary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx)
	}
	return &models.DatasetSummary{}, nil
}
