package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint - ready means the dataset finished loading
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	loaded := h.store.Loaded()

	w.Header().Set("Content-Type", "application/json")
	if !loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	resp := map[string]interface{}{"ready": loaded}
	if loaded {
		resp["rows"] = h.store.Table().Len()
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// noticeResponse covers the recoverable empty-result conditions: a valid
// selection with nothing to show. Not an error, the metric is just omitted.
func (h *Handler) noticeResponse(w http.ResponseWriter, notice string) {
	h.jsonResponse(w, http.StatusOK, map[string]string{"notice": notice})
}
