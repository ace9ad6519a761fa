package services

import (
	"context"
	"sort"

	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"
)

// LeaderboardService builds fresh standings projections. Nothing here is
// stored: ranks and win rates are derived from the player stats on every call.
type LeaderboardService struct {
	log  logger.Logger
	repo repository.PlayerRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(log logger.Logger, repo repository.PlayerRepository) *LeaderboardService {
	return &LeaderboardService{log: log, repo: repo}
}

// Build returns the current standings sorted by points descending. Players on
// equal points keep registration order, so the ordering is stable across
// rebuilds. Ranks are contiguous starting at 1.
func (s *LeaderboardService) Build(ctx context.Context) ([]models.RankedPlayer, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Points > players[j].Points
	})

	rows := make([]models.RankedPlayer, 0, len(players))
	for i, p := range players {
		var winRate float64
		if p.MatchesPlayed > 0 {
			winRate = float64(p.MatchesWon) / float64(p.MatchesPlayed) * 100
		}
		rows = append(rows, models.RankedPlayer{
			Rank:          i + 1,
			Name:          p.Name,
			Role:          p.Role,
			Rating:        p.Rating,
			Points:        p.Points,
			MatchesPlayed: p.MatchesPlayed,
			MatchesWon:    p.MatchesWon,
			WinRate:       winRate,
		})
	}
	return rows, nil
}
