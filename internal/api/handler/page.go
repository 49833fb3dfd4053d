package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go-records-dashboard/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type pageData struct {
	View     dashboard.View
	Dark     bool
	APIBase  string
	ChartLib string
}

// chartJSURL is the charting library the page loads
const chartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// Page renders the dashboard HTML for the session
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	view := s.View()

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		View:     view,
		Dark:     view.Theme == dashboard.ThemeDark,
		APIBase:  "/api/v1",
		ChartLib: chartJSURL,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
