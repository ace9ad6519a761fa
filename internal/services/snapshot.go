package services

import (
	"context"
	"encoding/json"

	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"
)

// Snapshot is the portable JSON form of the whole league: the three
// collections, nothing else. Settings and sessions stay local.
type Snapshot struct {
	Players []models.Player `json:"players"`
	Games   []models.Game   `json:"games"`
	Matches []models.Match  `json:"matches"`
}

// SnapshotServiceRepository defines the repository methods needed by SnapshotService
type SnapshotServiceRepository interface {
	repository.PlayerRepository
	repository.GameRepository
	repository.MatchRepository
	repository.SnapshotRepository
}

// SnapshotService exports and imports the league as a JSON document
type SnapshotService struct {
	log  logger.Logger
	repo SnapshotServiceRepository
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(log logger.Logger, repo SnapshotServiceRepository) *SnapshotService {
	return &SnapshotService{log: log, repo: repo}
}

// Export collects the current league state into a snapshot
func (s *SnapshotService) Export(ctx context.Context) (*Snapshot, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	games, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	if players == nil {
		players = []models.Player{}
	}
	if games == nil {
		games = []models.Game{}
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return &Snapshot{Players: players, Games: games, Matches: matches}, nil
}

// ExportJSON renders the snapshot as indented JSON for download
func (s *SnapshotService) ExportJSON(ctx context.Context) ([]byte, error) {
	snap, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Import replaces the whole league with the snapshot's collections in one
// transaction. Player records are validated before anything is touched so a
// bad document cannot half-apply.
func (s *SnapshotService) Import(ctx context.Context, snap Snapshot) error {
	seen := make(map[string]bool, len(snap.Players))
	for _, p := range snap.Players {
		validated, err := models.NewPlayer(p.Name, p.Rating, p.Role)
		if err != nil {
			return mapPlayerValidation(err)
		}
		key := normalizeName(validated.Name)
		if seen[key] {
			return ErrDuplicateName
		}
		seen[key] = true
	}

	if err := s.repo.ImportSnapshot(ctx, snap.Players, snap.Games, snap.Matches); err != nil {
		return err
	}

	s.log.Info("Snapshot imported",
		"players", len(snap.Players), "games", len(snap.Games), "matches", len(snap.Matches))
	return nil
}

// ImportJSON parses and imports a snapshot document
func (s *SnapshotService) ImportJSON(ctx context.Context, data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ErrInvalidSnapshot
	}
	return s.Import(ctx, snap)
}
