package dataset

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	datasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nfl_dataset_rows",
		Help: "Number of game rows in the loaded dataset",
	})

	datasetTeams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nfl_dataset_teams",
		Help: "Number of distinct teams in the loaded dataset",
	})

	datasetLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nfl_dataset_load_duration_seconds",
		Help:    "Duration of the one-time dataset load",
		Buckets: prometheus.DefBuckets,
	})
)

// Store owns the load-once dataset for a process. It replaces a hidden
// process-wide cache: construct one at startup, pass it to everything that
// needs the table. The file is read at most once; changes to it after the
// first Open are not observed for the rest of the process lifetime.
type Store struct {
	path   string
	logger *zap.SugaredLogger

	once  sync.Once
	table *Table
	err   error
}

// NewStore creates a Store for the file at path. Nothing is read until Open.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.Sugar(),
	}
}

// Open loads the table on first call and returns the cached result on every
// call after that, including a cached load failure.
func (s *Store) Open() (*Table, error) {
	s.once.Do(func() {
		start := time.Now()
		s.table, s.err = Load(s.path)
		if s.err != nil {
			s.logger.Errorw("Dataset load failed", "path", s.path, "error", s.err)
			return
		}
		datasetLoadDuration.Observe(time.Since(start).Seconds())
		datasetRows.Set(float64(s.table.Len()))
		datasetTeams.Set(float64(len(s.table.Teams())))
		min, max := s.table.SeasonBounds()
		s.logger.Infow("Dataset loaded",
			"path", s.path,
			"rows", s.table.Len(),
			"teams", len(s.table.Teams()),
			"season_min", min,
			"season_max", max,
			"duration", time.Since(start),
		)
	})
	return s.table, s.err
}

// Table returns the loaded table, or nil before a successful Open.
func (s *Store) Table() *Table {
	return s.table
}

// Loaded reports whether a table is available. Used by readiness checks.
func (s *Store) Loaded() bool {
	return s.table != nil
}
