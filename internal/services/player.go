package services

import (
	"context"
	"strings"

	"github.com/asimraja/crease/internal/errors"
	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"
)

// PlayerService handles player registry business logic
type PlayerService struct {
	log  logger.Logger
	repo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(log logger.Logger, repo repository.PlayerRepository) *PlayerService {
	return &PlayerService{log: log, repo: repo}
}

// Add registers a new player with fresh stats. Names are unique
// case-insensitively across the registry.
func (s *PlayerService) Add(ctx context.Context, name string, rating int, role string) (*models.Player, error) {
	player, err := models.NewPlayer(name, rating, role)
	if err != nil {
		return nil, mapPlayerValidation(err)
	}

	exists, err := s.repo.PlayerExists(ctx, player.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	id, err := s.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = int(id)

	s.log.Info("Player registered", "name", player.Name, "rating", player.Rating, "role", player.Role)
	return &player, nil
}

// Update changes a player's rating and role. The name and the stats counters
// cannot be edited through this path.
func (s *PlayerService) Update(ctx context.Context, name string, rating int, role string) (*models.Player, error) {
	if rating < 1 || rating > 10 {
		return nil, ErrInvalidRating
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if err := s.repo.UpdatePlayer(ctx, name, rating, role); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	s.log.Info("Player updated", "name", name, "rating", rating, "role", role)
	return s.Get(ctx, name)
}

// Delete removes a player from the registry. Recorded matches that mention the
// name keep it; history is never rewritten.
func (s *PlayerService) Delete(ctx context.Context, name string) error {
	if err := s.repo.DeletePlayer(ctx, name); err != nil {
		if err == repository.ErrNotFound {
			return ErrPlayerNotFound
		}
		return err
	}
	s.log.Info("Player removed", "name", name)
	return nil
}

// List returns all registered players in registration order
func (s *PlayerService) List(ctx context.Context) ([]models.Player, error) {
	return s.repo.ListPlayers(ctx)
}

// Get returns a player by name (case-insensitive)
func (s *PlayerService) Get(ctx context.Context, name string) (*models.Player, error) {
	player, err := s.repo.GetPlayer(ctx, name)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// normalizeName is the key used for case-insensitive uniqueness checks
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func mapPlayerValidation(err error) error {
	switch err {
	case models.ErrEmptyName:
		return ErrEmptyPlayerName
	case models.ErrInvalidRating:
		return ErrInvalidRating
	case models.ErrInvalidRole:
		return ErrInvalidRole
	}
	return err
}
