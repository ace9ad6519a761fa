package mock

import (
	"context"

	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListPlayersError = errors.New("database error")
//	svc := services.NewPlayerService(log, mockRepo)
//	_, err := svc.List(ctx)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Player Errors =====
	ListPlayersError  error
	GetPlayerError    error
	PlayerExistsError error
	CreatePlayerError error
	UpdatePlayerError error
	DeletePlayerError error

	// ===== Game Errors =====
	ListGamesError  error
	GetGameError    error
	CreateGameError error
	DeleteGameError error
	JoinGameError   error
	LeaveGameError  error

	// ===== Match Errors =====
	ListMatchesError error
	GetMatchError    error
	RecordMatchError error

	// ===== Settings Errors =====
	GetSettingError     error
	SetSettingError     error
	GetLeagueStatsError error

	// ===== Snapshot Errors =====
	ImportSnapshotError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Player Methods =====

func (m *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if m.ListPlayersError != nil {
		return nil, m.ListPlayersError
	}
	return m.FullRepository.ListPlayers(ctx)
}

func (m *Repository) GetPlayer(ctx context.Context, name string) (*models.Player, error) {
	if m.GetPlayerError != nil {
		return nil, m.GetPlayerError
	}
	return m.FullRepository.GetPlayer(ctx, name)
}

func (m *Repository) PlayerExists(ctx context.Context, name string) (bool, error) {
	if m.PlayerExistsError != nil {
		return false, m.PlayerExistsError
	}
	return m.FullRepository.PlayerExists(ctx, name)
}

func (m *Repository) CreatePlayer(ctx context.Context, p models.Player) (int64, error) {
	if m.CreatePlayerError != nil {
		return 0, m.CreatePlayerError
	}
	return m.FullRepository.CreatePlayer(ctx, p)
}

func (m *Repository) UpdatePlayer(ctx context.Context, name string, rating int, role string) error {
	if m.UpdatePlayerError != nil {
		return m.UpdatePlayerError
	}
	return m.FullRepository.UpdatePlayer(ctx, name, rating, role)
}

func (m *Repository) DeletePlayer(ctx context.Context, name string) error {
	if m.DeletePlayerError != nil {
		return m.DeletePlayerError
	}
	return m.FullRepository.DeletePlayer(ctx, name)
}

// ===== Game Methods =====

func (m *Repository) ListGames(ctx context.Context) ([]models.Game, error) {
	if m.ListGamesError != nil {
		return nil, m.ListGamesError
	}
	return m.FullRepository.ListGames(ctx)
}

func (m *Repository) GetGame(ctx context.Context, id int) (*models.Game, error) {
	if m.GetGameError != nil {
		return nil, m.GetGameError
	}
	return m.FullRepository.GetGame(ctx, id)
}

func (m *Repository) CreateGame(ctx context.Context, g models.Game) (int64, error) {
	if m.CreateGameError != nil {
		return 0, m.CreateGameError
	}
	return m.FullRepository.CreateGame(ctx, g)
}

func (m *Repository) DeleteGame(ctx context.Context, id int) error {
	if m.DeleteGameError != nil {
		return m.DeleteGameError
	}
	return m.FullRepository.DeleteGame(ctx, id)
}

func (m *Repository) JoinGame(ctx context.Context, id int, name string) (*models.Game, error) {
	if m.JoinGameError != nil {
		return nil, m.JoinGameError
	}
	return m.FullRepository.JoinGame(ctx, id, name)
}

func (m *Repository) LeaveGame(ctx context.Context, id int, name string) (*models.Game, error) {
	if m.LeaveGameError != nil {
		return nil, m.LeaveGameError
	}
	return m.FullRepository.LeaveGame(ctx, id, name)
}

// ===== Match Methods =====

func (m *Repository) ListMatches(ctx context.Context) ([]models.Match, error) {
	if m.ListMatchesError != nil {
		return nil, m.ListMatchesError
	}
	return m.FullRepository.ListMatches(ctx)
}

func (m *Repository) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	if m.GetMatchError != nil {
		return nil, m.GetMatchError
	}
	return m.FullRepository.GetMatch(ctx, id)
}

func (m *Repository) RecordMatch(ctx context.Context, match models.Match, participants, winners []string) error {
	if m.RecordMatchError != nil {
		return m.RecordMatchError
	}
	return m.FullRepository.RecordMatch(ctx, match, participants, winners)
}

// ===== Settings Methods =====

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

func (m *Repository) GetLeagueStats(ctx context.Context) (map[string]interface{}, error) {
	if m.GetLeagueStatsError != nil {
		return nil, m.GetLeagueStatsError
	}
	return m.FullRepository.GetLeagueStats(ctx)
}

// ===== Snapshot Methods =====

func (m *Repository) ImportSnapshot(ctx context.Context, players []models.Player, games []models.Game, matches []models.Match) error {
	if m.ImportSnapshotError != nil {
		return m.ImportSnapshotError
	}
	return m.FullRepository.ImportSnapshot(ctx, players, games, matches)
}
