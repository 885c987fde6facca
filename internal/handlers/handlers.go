package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/logic"
)

type Config struct {
	Store  *dataset.Store
	Logger *zap.Logger
	// Services
	KPI         logic.KPIService
	HeadToHead  logic.HeadToHeadService
	Aggregation logic.AggregationService
	Summary     logic.SummaryService
}

type Handler struct {
	store       *dataset.Store
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	kpi         logic.KPIService
	headToHead  logic.HeadToHeadService
	aggregation logic.AggregationService
	summary     logic.SummaryService
}

func New(cfg Config) *Handler {
	return &Handler{
		store:       cfg.Store,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		kpi:         cfg.KPI,
		headToHead:  cfg.HeadToHead,
		aggregation: cfg.Aggregation,
		summary:     cfg.Summary,
	}
}
