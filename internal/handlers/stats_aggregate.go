package handlers

import (
	"errors"
	"net/http"

	"github.com/nflcentral/scores-api/internal/logic"
	"github.com/nflcentral/scores-api/internal/models"
)

// GetTimeSeries returns games and scoring grouped over a calendar key
// @Summary Performance over time
// @Description Game counts and average total points per month, ISO week or year
// @Tags Aggregates
// @Produce json
// @Param group query string true "Grouping key" Enums(month, week, year)
// @Param metric query string false "Highlighted metric" Enums(games, avg_total_points)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Bad request"
// @Router /api/v1/timeseries [get]
func (h *Handler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	req := models.TimeSeriesRequest{
		Group:  r.URL.Query().Get("group"),
		Metric: r.URL.Query().Get("metric"),
	}
	if req.Metric == "" {
		req.Metric = models.MetricGames
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid timeseries request: "+err.Error())
		return
	}

	points, err := h.aggregation.Aggregate(r.Context(), req.Group)
	if err != nil {
		if errors.Is(err, logic.ErrUnknownGroup) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to aggregate time series", "group", req.Group, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"group":  req.Group,
		"metric": req.Metric,
		"points": points,
	})
}

// GetVenues returns the busiest stadiums ranked by the selected metric
// @Summary Stadium analysis
// @Description Top 20 stadiums by game count or average total points
// @Tags Aggregates
// @Produce json
// @Param metric query string false "Ranking metric" Enums(games, avg_total_points)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Bad request"
// @Router /api/v1/venues [get]
func (h *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	req := models.VenuesRequest{Metric: r.URL.Query().Get("metric")}
	if req.Metric == "" {
		req.Metric = models.MetricGames
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid venues request: "+err.Error())
		return
	}

	venues, err := h.aggregation.TopVenues(r.Context(), req.Metric)
	if err != nil {
		if errors.Is(err, logic.ErrUnknownMetric) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to rank venues", "metric", req.Metric, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metric": req.Metric,
		"venues": venues,
	})
}
