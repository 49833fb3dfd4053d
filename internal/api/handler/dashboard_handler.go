package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-records-dashboard/internal/dashboard"
	"go-records-dashboard/internal/model"
)

// DropdownState is the open flag of one dropdown
type DropdownState struct {
	Name string `json:"name" example:"topic"`
	Open bool   `json:"open"`
}

// SidebarState is the mobile sidebar flag
type SidebarState struct {
	Open bool `json:"open"`
}

// ScrollState reports whether the back-to-top button shows
type ScrollState struct {
	ShowBackToTop bool `json:"showBackToTop"`
}

// GetDashboard returns the session's dashboard view
// @Summary Get dashboard
// @Description Snapshot of filters, options, dropdowns, charts and the current table page. Charts and table are omitted while loading.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.View
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.View())
}

// SetFilter changes one filter and reloads the records
// @Summary Set filter
// @Description Sets the search text or selects a dropdown value ("" = All). The records are refetched and every aggregation recomputed.
// @Tags filters
// @Produce json
// @Param name path string true "Filter name" Enums(search, end_year, topic, sector, region, country, pestle, source)
// @Param value query string false "New value"
// @Success 200 {object} dashboard.View
// @Failure 400 {object} ErrorResponse
// @Router /filters/{name} [put]
func (h *DashboardHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	name := chi.URLParam(r, "name")
	value := r.URL.Query().Get("value")

	panel := s.Dashboard.Panel()
	var err error
	if name == model.FilterSearch {
		err = panel.SetText(r.Context(), name, value)
	} else {
		err = panel.Select(r.Context(), name, value)
	}
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), err)
		return
	}

	respondWithJSON(w, http.StatusOK, s.View())
}

// ResetFilters clears every filter
// @Summary Reset filters
// @Description Clears the search and every dropdown, then reloads once.
// @Tags filters
// @Produce json
// @Success 200 {object} dashboard.View
// @Router /filters/reset [post]
func (h *DashboardHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	s.Dashboard.Panel().Reset(r.Context())
	respondWithJSON(w, http.StatusOK, s.View())
}

// GetFilterOptions returns the available dropdown values
// @Summary Get filter options
// @Tags filters
// @Produce json
// @Success 200 {object} model.FilterOptions
// @Router /filters/options [get]
func (h *DashboardHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.Dashboard.Panel().Options())
}

// ToggleDropdown opens or closes one dropdown
// @Summary Toggle dropdown
// @Tags filters
// @Produce json
// @Param name path string true "Dropdown name"
// @Success 200 {object} DropdownState
// @Failure 400 {object} ErrorResponse
// @Router /dropdowns/{name}/toggle [post]
func (h *DashboardHandler) ToggleDropdown(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	name := chi.URLParam(r, "name")

	open, err := s.Dashboard.Panel().Toggle(name)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), err)
		return
	}
	respondWithJSON(w, http.StatusOK, DropdownState{Name: name, Open: open})
}

// PointerDown dispatches a document pointer-down
// @Summary Pointer down
// @Description Every open dropdown other than target closes. An empty target is outside all dropdowns.
// @Tags filters
// @Produce json
// @Param target query string false "Dropdown the pointer landed in"
// @Success 200 {array} dashboard.DropdownView
// @Router /pointer-down [post]
func (h *DashboardHandler) PointerDown(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	s.Document.PointerDown(r.URL.Query().Get("target"))
	respondWithJSON(w, http.StatusOK, s.Dashboard.Panel().Dropdowns())
}

// ToggleSidebar opens or closes the mobile sidebar
// @Summary Toggle sidebar
// @Tags dashboard
// @Produce json
// @Success 200 {object} SidebarState
// @Router /sidebar/toggle [post]
func (h *DashboardHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, SidebarState{Open: s.Dashboard.ToggleSidebar()})
}

// Scroll records the page scroll offset
// @Summary Scroll
// @Description The back-to-top button shows past 400px.
// @Tags dashboard
// @Produce json
// @Param y query int true "Vertical scroll offset"
// @Success 200 {object} ScrollState
// @Failure 400 {object} ErrorResponse
// @Router /scroll [post]
func (h *DashboardHandler) Scroll(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	y, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "y must be an integer", err)
		return
	}
	respondWithJSON(w, http.StatusOK, ScrollState{ShowBackToTop: s.Dashboard.Scroll(y)})
}

// GetTable returns the current table page
// @Summary Get table page
// @Tags table
// @Produce json
// @Success 200 {object} dashboard.TablePage
// @Router /table [get]
func (h *DashboardHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.Dashboard.TablePage())
}

// NextPage advances the table
// @Summary Next table page
// @Tags table
// @Produce json
// @Success 200 {object} dashboard.TablePage
// @Router /table/next [post]
func (h *DashboardHandler) NextPage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.Dashboard.NextPage())
}

// PrevPage steps the table back
// @Summary Previous table page
// @Tags table
// @Produce json
// @Success 200 {object} dashboard.TablePage
// @Router /table/prev [post]
func (h *DashboardHandler) PrevPage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.Dashboard.PrevPage())
}

// SetPageSize changes the rows per page
// @Summary Set page size
// @Tags table
// @Produce json
// @Param value query int true "Rows per page" Enums(10, 25, 50, 100)
// @Success 200 {object} dashboard.TablePage
// @Failure 400 {object} ErrorResponse
// @Router /table/page-size [put]
func (h *DashboardHandler) SetPageSize(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	size, err := strconv.Atoi(r.URL.Query().Get("value"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "page size must be an integer", err)
		return
	}

	page, err := s.Dashboard.SetPageSize(size)
	if errors.Is(err, dashboard.ErrInvalidPageSize) {
		respondWithError(w, http.StatusBadRequest, err.Error(), err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// GetCharts returns the three chart configs
// @Summary Get charts
// @Tags charts
// @Produce json
// @Success 200 {object} dashboard.Charts
// @Router /charts [get]
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, s.Dashboard.Charts())
}
