package handler

import (
	"net/http"
	"strconv"

	"go-records-dashboard/internal/store"
)

// ListFetches returns the session's recent records requests
// @Summary List fetches
// @Description Newest first. Stale responses are listed with stale=true.
// @Tags diagnostics
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} model.FetchLog
// @Failure 500 {object} ErrorResponse
// @Router /fetches [get]
func (h *DashboardHandler) ListFetches(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	logs, err := store.GetFetchLogs(s.ID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch logs", err)
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}

// Health reports liveness
// @Summary Health check
// @Tags diagnostics
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}
