package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/asimraja/crease/internal/errors"
	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"
	"github.com/skip2/go-qrcode"
)

// Broadcaster defines the interface for pushing live updates to clients
type Broadcaster interface {
	BroadcastGameRoster(game *models.Game)
	BroadcastMatchRecorded(match *models.Match)
	BroadcastLeaderboard(rows []models.RankedPlayer)
}

// GameService handles game scheduling and RSVP business logic
type GameService struct {
	log         logger.Logger
	repo        repository.GameRepository
	players     PlayerServicer
	settings    SettingsServicer
	broadcaster Broadcaster
}

// NewGameService creates a new GameService
func NewGameService(log logger.Logger, repo repository.GameRepository, players PlayerServicer, settings SettingsServicer) *GameService {
	return &GameService{log: log, repo: repo, players: players, settings: settings}
}

// SetBroadcaster sets the broadcaster for sending roster updates to clients
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create schedules a new game with an empty roster
func (s *GameService) Create(ctx context.Context, g models.Game) (*models.Game, error) {
	if g.Date == "" {
		return nil, ErrInvalidGameDate
	}
	if g.MaxPlayers < 2 {
		return nil, ErrInvalidMaxPlayers
	}
	if g.Type == "" {
		g.Type = models.GameTypeInternal
	}
	if g.Type != models.GameTypeInternal && g.Type != models.GameTypeExternal {
		return nil, ErrInvalidGameType
	}
	g.Votes = []string{}

	id, err := s.repo.CreateGame(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = int(id)

	s.log.Info("Game scheduled", "id", g.ID, "date", g.Date, "max_players", g.MaxPlayers)
	return &g, nil
}

// List returns all scheduled games
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	return s.repo.ListGames(ctx)
}

// Get returns a game by id
func (s *GameService) Get(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.repo.GetGame(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// Delete removes a game. Matches already recorded from it are untouched.
func (s *GameService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteGame(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrGameNotFound
		}
		return err
	}
	s.log.Info("Game deleted", "id", id)
	return nil
}

// Join adds a registered player to the game's roster. The roster keeps
// join order, never repeats a name and never exceeds max players.
func (s *GameService) Join(ctx context.Context, gameID int, playerName string) (*models.Game, error) {
	player, err := s.players.Get(ctx, playerName)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.JoinGame(ctx, gameID, player.Name)
	if err != nil {
		return nil, mapRosterError(err)
	}

	s.log.Info("Player joined game", "game", gameID, "player", player.Name, "roster", len(game.Votes))
	if s.broadcaster != nil {
		s.broadcaster.BroadcastGameRoster(game)
	}
	return game, nil
}

// Cancel removes a player's RSVP, preserving the order of the rest
func (s *GameService) Cancel(ctx context.Context, gameID int, playerName string) (*models.Game, error) {
	player, err := s.players.Get(ctx, playerName)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.LeaveGame(ctx, gameID, player.Name)
	if err != nil {
		return nil, mapRosterError(err)
	}

	s.log.Info("Player left game", "game", gameID, "player", player.Name, "roster", len(game.Votes))
	if s.broadcaster != nil {
		s.broadcaster.BroadcastGameRoster(game)
	}
	return game, nil
}

// GenerateJoinQR renders a QR code PNG linking to the game's join page,
// for printing or sharing in the group chat
func (s *GameService) GenerateJoinQR(ctx context.Context, gameID int) ([]byte, error) {
	if _, err := s.Get(ctx, gameID); err != nil {
		return nil, err
	}

	baseURL, err := s.settings.GetBaseURL(ctx)
	if err != nil || baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	joinURL := fmt.Sprintf("%s/games/%d/join", strings.TrimSuffix(baseURL, "/"), gameID)
	return qrcode.Encode(joinURL, qrcode.Medium, 256)
}

func mapRosterError(err error) error {
	switch {
	case err == repository.ErrGameFull:
		return ErrGameFull
	case err == repository.ErrAlreadyVoted:
		return ErrAlreadyVoted
	case err == repository.ErrNotVoted:
		return ErrNotVoted
	case errors.IsNotFound(err):
		return ErrGameNotFound
	}
	return err
}
