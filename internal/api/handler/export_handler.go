package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go-records-dashboard/internal/pipeline"
)

// Export downloads the current record set as CSV
// @Summary Export records
// @Description Every record currently loaded, after the search narrowing. Header from the first record's keys, every field quoted. No content when the set is empty.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "records.csv"
// @Success 204 "Nothing to export"
// @Router /export [get]
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	data, ok := pipeline.ExportCSV(s.Dashboard.Records())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pipeline.ExportFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
