package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nflcentral/scores-api/internal/logic"
	"github.com/nflcentral/scores-api/internal/models"
)

// GetKPI returns one headline statistic over a season range
// @Summary Season-range KPI
// @Description Compute a single KPI over the games in an inclusive season range
// @Tags KPI
// @Produce json
// @Param name query string true "KPI name" Enums(total_games, avg_total_points, home_win_rate, close_games)
// @Param season_from query int false "First season, defaults to the earliest on record"
// @Param season_to query int false "Last season, defaults to the latest on record"
// @Success 200 {object} models.KPIResult
// @Failure 400 {object} map[string]string "Bad request"
// @Router /api/v1/kpi [get]
func (h *Handler) GetKPI(w http.ResponseWriter, r *http.Request) {
	table := h.store.Table()
	minSeason, maxSeason := table.SeasonBounds()

	req := models.KPIRequest{Name: r.URL.Query().Get("name")}

	var ok bool
	if req.SeasonFrom, ok = h.seasonParam(w, r, "season_from", minSeason); !ok {
		return
	}
	if req.SeasonTo, ok = h.seasonParam(w, r, "season_to", maxSeason); !ok {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid KPI request: "+err.Error())
		return
	}

	rng := models.SeasonRange{From: req.SeasonFrom, To: req.SeasonTo}
	res, err := h.kpi.Compute(r.Context(), rng, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrEmptyRange):
			h.noticeResponse(w, "No games in the selected season range.")
		case errors.Is(err, logic.ErrUnknownKPI):
			h.errorResponse(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Errorw("Failed to compute KPI", "name", req.Name, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, res)
}

// seasonParam parses an optional integer query parameter, writing a 400 and
// returning ok=false when the value is present but not a number.
func (h *Handler) seasonParam(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid "+name+": "+raw)
		return 0, false
	}
	return v, true
}
