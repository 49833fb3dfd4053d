package handler

import "net/http"

// ThemeState is the session's colour scheme
type ThemeState struct {
	Theme string `json:"theme" example:"dark"`
}

// GetTheme returns the session theme
// @Summary Get theme
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeState
// @Router /theme [get]
func (h *DashboardHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, ThemeState{Theme: s.Theme.Name()})
}

// ToggleTheme flips between light and dark and persists the choice
// @Summary Toggle theme
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeState
// @Router /theme/toggle [post]
func (h *DashboardHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	respondWithJSON(w, http.StatusOK, ThemeState{Theme: s.Theme.Toggle()})
}
