package services

import (
	"context"
	"time"

	"github.com/asimraja/crease/internal/errors"
	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
	"github.com/asimraja/crease/internal/repository"

	"github.com/google/uuid"
)

// MatchService handles match recording and history
type MatchService struct {
	log         logger.Logger
	repo        repository.MatchRepository
	leaderboard LeaderboardServicer
	broadcaster Broadcaster
}

// NewMatchService creates a new MatchService
func NewMatchService(log logger.Logger, repo repository.MatchRepository, leaderboard LeaderboardServicer) *MatchService {
	return &MatchService{log: log, repo: repo, leaderboard: leaderboard}
}

// SetBroadcaster sets the broadcaster for pushing results to clients
func (s *MatchService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Record writes an immutable match record and applies the stat fan-out:
// every participant is credited an appearance, every member of the winning
// team additionally gets a win and a point. The record and all stat updates
// land in one transaction; a failure applies nothing.
func (s *MatchService) Record(ctx context.Context, gameID int, date string, teams []models.FinalizedTeam, winner string) (*models.Match, error) {
	if len(teams) < 2 {
		return nil, ErrTooFewTeams
	}

	var winningTeam *models.FinalizedTeam
	for i := range teams {
		if teams[i].Name == winner {
			if winningTeam != nil {
				return nil, ErrUnknownWinner
			}
			winningTeam = &teams[i]
		}
	}
	if winningTeam == nil {
		return nil, ErrUnknownWinner
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	match := models.Match{
		ID:     uuid.NewString(),
		GameID: gameID,
		Date:   date,
		Teams:  teams,
		Winner: winner,
	}

	var participants []string
	for _, t := range teams {
		participants = append(participants, t.Players...)
	}

	if err := s.repo.RecordMatch(ctx, match, participants, winningTeam.Players); err != nil {
		return nil, err
	}

	s.log.Info("Match recorded", "id", match.ID, "winner", winner, "participants", len(participants))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMatchRecorded(&match)
		if rows, err := s.leaderboard.Build(ctx); err == nil {
			s.broadcaster.BroadcastLeaderboard(rows)
		}
	}
	return &match, nil
}

// List returns all recorded matches, newest first
func (s *MatchService) List(ctx context.Context) ([]models.Match, error) {
	return s.repo.ListMatches(ctx)
}

// Get returns a match by id
func (s *MatchService) Get(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}
