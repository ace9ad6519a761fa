package handlers

import (
	"github.com/asimraja/crease/internal/auth"
	"github.com/asimraja/crease/internal/services"
	"github.com/asimraja/crease/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Players     services.PlayerServicer
	Games       services.GameServicer
	Teams       services.TeamServicer
	Matches     services.MatchServicer
	Leaderboard services.LeaderboardServicer
	Snapshots   services.SnapshotServicer
	Settings    services.SettingsServicer
	Auth        *auth.Auth
	Hub         *websocket.Hub
	Log         HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	players services.PlayerServicer,
	games services.GameServicer,
	teams services.TeamServicer,
	matches services.MatchServicer,
	leaderboard services.LeaderboardServicer,
	snapshots services.SnapshotServicer,
	settings services.SettingsServicer,
	sessionAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Players:     players,
		Games:       games,
		Teams:       teams,
		Matches:     matches,
		Leaderboard: leaderboard,
		Snapshots:   snapshots,
		Settings:    settings,
		Auth:        sessionAuth,
		Hub:         hub,
		Log:         log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance with a known set of passwords
// and no hub, for exercising API endpoints directly
func NewForTesting(
	players services.PlayerServicer,
	games services.GameServicer,
	teams services.TeamServicer,
	matches services.MatchServicer,
	leaderboard services.LeaderboardServicer,
	snapshots services.SnapshotServicer,
	settings services.SettingsServicer,
) *Handlers {
	testAuth := auth.New("master-pass", "admin-pass", "player-pass")
	return &Handlers{
		Players:     players,
		Games:       games,
		Teams:       teams,
		Matches:     matches,
		Leaderboard: leaderboard,
		Snapshots:   snapshots,
		Settings:    settings,
		Auth:        testAuth,
		Log:         NoopHTTPLogger{},
	}
}
