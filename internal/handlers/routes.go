package handlers

import (
	"net/http"
	"time"

	"github.com/asimraja/crease/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Auth (public)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)
	r.Get("/api/session", h.handleSession)

	// Read API plus self-service roster actions (any logged-in player)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(auth.RolePlayer))

		r.Get("/api/players", h.handleListPlayers)
		r.Get("/api/players/{name}", h.handleGetPlayer)

		r.Get("/api/games", h.handleListGames)
		r.Get("/api/games/{id}", h.handleGetGame)
		r.Get("/api/games/{id}/qr", h.handleGameJoinQR)
		r.Post("/api/games/{id}/join", h.handleJoinGame)
		r.Post("/api/games/{id}/cancel", h.handleCancelGame)

		r.Get("/api/matches", h.handleListMatches)
		r.Get("/api/matches/{id}", h.handleGetMatch)

		r.Get("/api/leaderboard", h.handleLeaderboard)
		r.Get("/api/stats", h.handleGetStats)
	})

	// Admin API (roster management, drafting, match recording)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(auth.RoleAdmin))

		r.Post("/api/players", h.handleCreatePlayer)
		r.Put("/api/players/{name}", h.handleUpdatePlayer)
		r.Delete("/api/players/{name}", h.handleDeletePlayer)

		r.Post("/api/games", h.handleCreateGame)
		r.Delete("/api/games/{id}", h.handleDeleteGame)

		r.Post("/api/teams/generate", h.handleGenerateTeams)
		r.Post("/api/teams/move", h.handleMoveTeamPlayer)
		r.Post("/api/teams/finalize", h.handleFinalizeTeams)

		r.Post("/api/matches", h.handleRecordMatch)
	})

	// Master admin API (settings and whole-database snapshots)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(auth.RoleMasterAdmin))

		r.Get("/api/admin/settings", h.handleGetSettings)
		r.Put("/api/admin/settings", h.handleUpdateSettings)

		r.Get("/api/admin/snapshot", h.handleExportSnapshot)
		r.Post("/api/admin/snapshot", h.handleImportSnapshot)
	})

	return r
}
