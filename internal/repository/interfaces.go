package repository

import (
	"context"

	"github.com/asimraja/crease/internal/models"
)

// PlayerRepository defines player registry data operations
type PlayerRepository interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayer(ctx context.Context, name string) (*models.Player, error)
	PlayerExists(ctx context.Context, name string) (bool, error)
	CreatePlayer(ctx context.Context, p models.Player) (int64, error)
	UpdatePlayer(ctx context.Context, name string, rating int, role string) error
	DeletePlayer(ctx context.Context, name string) error
}

// GameRepository defines game scheduling and roster data operations
type GameRepository interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id int) (*models.Game, error)
	CreateGame(ctx context.Context, g models.Game) (int64, error)
	DeleteGame(ctx context.Context, id int) error
	JoinGame(ctx context.Context, id int, name string) (*models.Game, error)
	LeaveGame(ctx context.Context, id int, name string) (*models.Game, error)
}

// MatchRepository defines match history data operations
type MatchRepository interface {
	ListMatches(ctx context.Context) ([]models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	RecordMatch(ctx context.Context, m models.Match, participants, winners []string) error
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetLeagueStats(ctx context.Context) (map[string]interface{}, error)
}

// SnapshotRepository defines whole-database snapshot operations
type SnapshotRepository interface {
	ImportSnapshot(ctx context.Context, players []models.Player, games []models.Game, matches []models.Match) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	PlayerRepository
	GameRepository
	MatchRepository
	SettingsRepository
	SnapshotRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
