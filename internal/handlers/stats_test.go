package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nflcentral/scores-api/internal/logic"
	"github.com/nflcentral/scores-api/internal/models"
)

func newTestHandler(t *testing.T, cfg Config) *Handler {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = testStore(t)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return New(cfg)
}

func TestGetKPI(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockFunc       func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error)
		expectedStatus int
		expectNotice   bool
	}{
		{
			name:  "Success",
			query: "name=total_games&season_from=2010&season_to=2015",
			mockFunc: func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
				return &models.KPIResult{Name: name, Value: 3, Display: "3"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "DefaultsToFullRange",
			query: "name=home_win_rate",
			mockFunc: func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
				if rng.From != 2010 || rng.To != 2015 {
					return nil, context.DeadlineExceeded
				}
				return &models.KPIResult{Name: name}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "EmptyRangeNotice",
			query: "name=total_games&season_from=1990&season_to=1995",
			mockFunc: func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
				return nil, logic.ErrEmptyRange
			},
			expectedStatus: http.StatusOK,
			expectNotice:   true,
		},
		{
			name:           "UnknownName",
			query:          "name=turnovers",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingName",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "BadSeasonParam",
			query:          "name=total_games&season_from=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "InvertedRange",
			query:          "name=total_games&season_from=2015&season_to=2010",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "ServiceError",
			query: "name=total_games",
			mockFunc: func(ctx context.Context, rng models.SeasonRange, name string) (*models.KPIResult, error) {
				return nil, context.DeadlineExceeded
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Config{KPI: &MockKPIService{ComputeFunc: tt.mockFunc}})

			req := httptest.NewRequest("GET", "/api/v1/kpi?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.GetKPI(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectNotice && !strings.Contains(w.Body.String(), "notice") {
				t.Errorf("body = %s, want a notice", w.Body.String())
			}
		})
	}
}

func TestGetHeadToHead(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockFunc       func(ctx context.Context, teamA, teamB string) (*models.H2HResult, error)
		expectedStatus int
		expectNotice   bool
	}{
		{
			name:  "Success",
			query: "team_a=Packers&team_b=Bears",
			mockFunc: func(ctx context.Context, teamA, teamB string) (*models.H2HResult, error) {
				return &models.H2HResult{TeamA: teamA, TeamB: teamB, Games: 1}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MissingTeam",
			query:          "team_a=Packers",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "SameTeam",
			query: "team_a=Packers&team_b=Packers",
			mockFunc: func(ctx context.Context, teamA, teamB string) (*models.H2HResult, error) {
				return nil, logic.ErrSameTeam
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "NoHistoryNotice",
			query: "team_a=Packers&team_b=Jets",
			mockFunc: func(ctx context.Context, teamA, teamB string) (*models.H2HResult, error) {
				return nil, logic.ErrNoHistory
			},
			expectedStatus: http.StatusOK,
			expectNotice:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Config{HeadToHead: &MockHeadToHeadService{CompareFunc: tt.mockFunc}})

			req := httptest.NewRequest("GET", "/api/v1/head-to-head?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.GetHeadToHead(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectNotice && !strings.Contains(w.Body.String(), "notice") {
				t.Errorf("body = %s, want a notice", w.Body.String())
			}
		})
	}
}

func TestGetTimeSeries(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"ByMonth", "group=month", http.StatusOK},
		{"ByWeekWithMetric", "group=week&metric=avg_total_points", http.StatusOK},
		{"MissingGroup", "", http.StatusBadRequest},
		{"UnknownGroup", "group=referee", http.StatusBadRequest},
		{"UnknownMetric", "group=year&metric=attendance", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Config{Aggregation: &MockAggregationService{}})

			req := httptest.NewRequest("GET", "/api/v1/timeseries?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.GetTimeSeries(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestGetVenues(t *testing.T) {
	mock := &MockAggregationService{
		TopVenuesFunc: func(ctx context.Context, metric string) ([]models.GroupAggregate, error) {
			return []models.GroupAggregate{{Key: "Lambeau Field", Games: 2}}, nil
		},
	}
	h := newTestHandler(t, Config{Aggregation: mock})

	req := httptest.NewRequest("GET", "/api/v1/venues", nil)
	w := httptest.NewRecorder()

	h.GetVenues(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}

	var body struct {
		Metric string                  `json:"metric"`
		Venues []models.GroupAggregate `json:"venues"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Metric != models.MetricGames {
		t.Errorf("default metric = %q, want %q", body.Metric, models.MetricGames)
	}
	if len(body.Venues) != 1 || body.Venues[0].Key != "Lambeau Field" {
		t.Errorf("venues = %+v", body.Venues)
	}
}

func TestGetTeams(t *testing.T) {
	h := newTestHandler(t, Config{})

	req := httptest.NewRequest("GET", "/api/v1/teams", nil)
	w := httptest.NewRecorder()

	h.GetTeams(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}

	var body struct {
		Teams []string `json:"teams"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := []string{"Bears", "Lions", "Packers"}
	if body.Count != len(want) {
		t.Fatalf("count = %d, want %d", body.Count, len(want))
	}
	for i := range want {
		if body.Teams[i] != want[i] {
			t.Errorf("teams[%d] = %q, want %q", i, body.Teams[i], want[i])
		}
	}
}

func TestGetSummary(t *testing.T) {
	mock := &MockSummaryService{
		SummarizeFunc: func(ctx context.Context) (*models.DatasetSummary, error) {
			return &models.DatasetSummary{Games: 3, Teams: 3, SeasonMin: 2010, SeasonMax: 2015}, nil
		},
	}
	h := newTestHandler(t, Config{Summary: mock})

	req := httptest.NewRequest("GET", "/api/v1/summary", nil)
	w := httptest.NewRecorder()

	h.GetSummary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}

	var sum models.DatasetSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if sum.Games != 3 || sum.SeasonMax != 2015 {
		t.Errorf("summary = %+v", sum)
	}
}

// Keep the validator wiring honest: request structs must reject what the
// services would reject anyway.
func TestRequestValidation(t *testing.T) {
	v := validator.New()

	if err := v.Struct(models.KPIRequest{SeasonFrom: 2010, SeasonTo: 2015, Name: "total_games"}); err != nil {
		t.Errorf("valid KPI request rejected: %v", err)
	}
	if err := v.Struct(models.KPIRequest{SeasonFrom: 2010, SeasonTo: 2015, Name: "nope"}); err == nil {
		t.Error("unknown KPI name accepted")
	}
	if err := v.Struct(models.TimeSeriesRequest{Group: "month"}); err != nil {
		t.Errorf("valid timeseries request rejected: %v", err)
	}
	if err := v.Struct(models.HeadToHeadRequest{TeamA: "A"}); err == nil {
		t.Error("missing team_b accepted")
	}
}
