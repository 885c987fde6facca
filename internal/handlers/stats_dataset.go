package handlers

import (
	"net/http"
)

// GetSummary describes the loaded dataset
// @Summary Dataset summary
// @Description Game and team counts, season bounds and date coverage
// @Tags Dataset
// @Produce json
// @Success 200 {object} models.DatasetSummary
// @Router /api/v1/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.summary.Summarize(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to summarize dataset", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.jsonResponse(w, http.StatusOK, sum)
}

// GetTeams lists every team appearing in the dataset
// @Summary Team list
// @Description Sorted distinct team names, home and away combined
// @Tags Dataset
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.store.Table().Teams()
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}
