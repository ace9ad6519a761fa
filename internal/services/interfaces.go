package services

import (
	"context"

	"github.com/asimraja/crease/internal/models"
)

// PlayerServicer defines the interface for player registry operations
type PlayerServicer interface {
	Add(ctx context.Context, name string, rating int, role string) (*models.Player, error)
	Update(ctx context.Context, name string, rating int, role string) (*models.Player, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Player, error)
	Get(ctx context.Context, name string) (*models.Player, error)
}

// GameServicer defines the interface for game scheduling operations
type GameServicer interface {
	Create(ctx context.Context, g models.Game) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
	Get(ctx context.Context, id int) (*models.Game, error)
	Delete(ctx context.Context, id int) error
	Join(ctx context.Context, gameID int, playerName string) (*models.Game, error)
	Cancel(ctx context.Context, gameID int, playerName string) (*models.Game, error)
	GenerateJoinQR(ctx context.Context, gameID int) ([]byte, error)
	SetBroadcaster(b Broadcaster)
}

// TeamServicer defines the interface for team drafting operations
type TeamServicer interface {
	Generate(ctx context.Context, names []string, teamCount int) ([]models.Team, error)
	Move(teams []models.Team, playerName string, from, to int) ([]models.Team, error)
	Finalize(teams []models.Team, names, captains []string) ([]models.FinalizedTeam, error)
}

// MatchServicer defines the interface for match recording operations
type MatchServicer interface {
	Record(ctx context.Context, gameID int, date string, teams []models.FinalizedTeam, winner string) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Get(ctx context.Context, id string) (*models.Match, error)
	SetBroadcaster(b Broadcaster)
}

// LeaderboardServicer defines the interface for standings projections
type LeaderboardServicer interface {
	Build(ctx context.Context) ([]models.RankedPlayer, error)
}

// SnapshotServicer defines the interface for snapshot export/import
type SnapshotServicer interface {
	Export(ctx context.Context) (*Snapshot, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, snap Snapshot) error
	ImportJSON(ctx context.Context, data []byte) error
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
	GetLeagueName(ctx context.Context) (string, error)
	SetLeagueName(ctx context.Context, name string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetStats(ctx context.Context) (map[string]interface{}, error)
}

// Ensure concrete types implement interfaces
var (
	_ PlayerServicer      = (*PlayerService)(nil)
	_ GameServicer        = (*GameService)(nil)
	_ TeamServicer        = (*TeamService)(nil)
	_ MatchServicer       = (*MatchService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
	_ SnapshotServicer    = (*SnapshotService)(nil)
	_ SettingsServicer    = (*SettingsService)(nil)
)
