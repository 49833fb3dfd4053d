package handler

import (
	"context"
	"net/http"
	"time"

	"go-records-dashboard/internal/dashboard"
)

// SessionCookie carries the anonymous dashboard session id
const SessionCookie = "dashboard_session"

const sessionMaxAge = 30 * 24 * time.Hour

// DashboardHandler serves the dashboard page and its JSON API
type DashboardHandler struct {
	sessions     *dashboard.Registry
	secureCookie bool
}

// NewDashboardHandler creates a handler over the session registry
func NewDashboardHandler(sessions *dashboard.Registry, secureCookie bool) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, secureCookie: secureCookie}
}

// session resolves the caller's session, issuing a cookie for a new one, and
// makes sure its initial load has run. The load outlives a cancelled request.
func (h *DashboardHandler) session(w http.ResponseWriter, r *http.Request) *dashboard.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	s, created := h.sessions.Get(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    s.ID,
			Path:     "/",
			MaxAge:   int(sessionMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	s.EnsureInit(context.WithoutCancel(r.Context()))
	return s
}
