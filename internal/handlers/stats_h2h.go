package handlers

import (
	"errors"
	"net/http"

	"github.com/nflcentral/scores-api/internal/logic"
	"github.com/nflcentral/scores-api/internal/models"
)

// GetHeadToHead returns the shared history of two teams
// @Summary Head-to-head comparison
// @Description All games between two teams in either home/away configuration
// @Tags HeadToHead
// @Produce json
// @Param team_a query string true "First team"
// @Param team_b query string true "Second team"
// @Success 200 {object} models.H2HResult
// @Failure 400 {object} map[string]string "Bad request"
// @Router /api/v1/head-to-head [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	req := models.HeadToHeadRequest{
		TeamA: r.URL.Query().Get("team_a"),
		TeamB: r.URL.Query().Get("team_b"),
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Both team_a and team_b are required")
		return
	}

	res, err := h.headToHead.Compare(r.Context(), req.TeamA, req.TeamB)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrSameTeam):
			h.errorResponse(w, http.StatusBadRequest, "Select two different teams.")
		case errors.Is(err, logic.ErrNoHistory):
			h.noticeResponse(w, "No games between "+req.TeamA+" and "+req.TeamB+".")
		default:
			h.logger.Errorw("Failed to compare teams", "team_a", req.TeamA, "team_b", req.TeamB, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, res)
}
