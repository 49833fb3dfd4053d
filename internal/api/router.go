package api

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-records-dashboard/docs"
	"go-records-dashboard/internal/api/handler"
	"go-records-dashboard/pkg/router"
)

// NewRouter builds the dashboard router. Cross-origin requests are refused
// unless origins is set; credentials are only allowed for listed origins,
// never with "*".
func NewRouter(h *handler.DashboardHandler, origins []string) *router.Router {
	var middlewares []func(http.Handler) http.Handler
	if len(origins) > 0 {
		middlewares = append(middlewares, cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: !slices.Contains(origins, "*"),
			MaxAge:           300,
		}))
	}
	r := router.New(middlewares...)
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *router.Router, h *handler.DashboardHandler) {
	r.GET("/", h.Page)
	r.GET("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.GET("/api/v1/dashboard", h.GetDashboard)
	// Static filter routes before the {name} pattern
	r.POST("/api/v1/filters/reset", h.ResetFilters)
	r.GET("/api/v1/filters/options", h.GetFilterOptions)
	r.PUT("/api/v1/filters/{name}", h.SetFilter)
	r.POST("/api/v1/dropdowns/{name}/toggle", h.ToggleDropdown)
	r.POST("/api/v1/pointer-down", h.PointerDown)
	r.POST("/api/v1/sidebar/toggle", h.ToggleSidebar)
	r.POST("/api/v1/scroll", h.Scroll)

	r.GET("/api/v1/table", h.GetTable)
	r.POST("/api/v1/table/next", h.NextPage)
	r.POST("/api/v1/table/prev", h.PrevPage)
	r.PUT("/api/v1/table/page-size", h.SetPageSize)

	r.GET("/api/v1/charts", h.GetCharts)
	r.GET("/api/v1/export", h.Export)

	r.GET("/api/v1/theme", h.GetTheme)
	r.POST("/api/v1/theme/toggle", h.ToggleTheme)

	r.GET("/api/v1/fetches", h.ListFetches)
}
