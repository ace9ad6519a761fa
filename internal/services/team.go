package services

import (
	"context"

	"github.com/asimraja/crease/internal/balance"
	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/models"
)

// TeamService wraps the pure drafting core with registry lookups. Draft state
// lives with the caller: teams travel in and out of every call, so two
// organizers can draft different games without stepping on each other.
type TeamService struct {
	log     logger.Logger
	players PlayerServicer
}

// NewTeamService creates a new TeamService
func NewTeamService(log logger.Logger, players PlayerServicer) *TeamService {
	return &TeamService{log: log, players: players}
}

// Generate drafts the named players into teamCount balanced teams. With an
// empty name list the whole registry is drafted. Unknown names are rejected,
// not skipped, so a typo cannot silently shrink a side.
func (s *TeamService) Generate(ctx context.Context, names []string, teamCount int) ([]models.Team, error) {
	var pool []models.Player
	if len(names) == 0 {
		all, err := s.players.List(ctx)
		if err != nil {
			return nil, err
		}
		pool = all
	} else {
		pool = make([]models.Player, 0, len(names))
		for _, name := range names {
			player, err := s.players.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			pool = append(pool, *player)
		}
	}

	teams, err := balance.Partition(pool, teamCount)
	if err != nil {
		return nil, mapBalanceError(err)
	}

	s.log.Info("Teams generated", "players", len(pool), "teams", teamCount)
	return teams, nil
}

// Move reassigns a player between drafted teams, returning the updated draft
func (s *TeamService) Move(teams []models.Team, playerName string, from, to int) ([]models.Team, error) {
	moved, err := balance.Move(teams, playerName, from, to)
	if err != nil {
		return nil, mapBalanceError(err)
	}
	return moved, nil
}

// Finalize snapshots a draft under operator-chosen team names and captains
func (s *TeamService) Finalize(teams []models.Team, names, captains []string) ([]models.FinalizedTeam, error) {
	final, err := balance.Finalize(teams, names, captains)
	if err != nil {
		return nil, mapBalanceError(err)
	}
	s.log.Info("Teams finalized", "teams", len(final))
	return final, nil
}

func mapBalanceError(err error) error {
	switch err {
	case balance.ErrTeamCount:
		return ErrInvalidTeamCount
	case balance.ErrInsufficientPlayers:
		return ErrInsufficientPlayers
	case balance.ErrPlayerNotFound:
		return ErrPlayerNotOnTeam
	case balance.ErrTeamIndex:
		return ErrInvalidTeamIndex
	case balance.ErrInvalidCaptain:
		return ErrInvalidCaptain
	case balance.ErrTeamNameRequired:
		return ErrTeamNameRequired
	case balance.ErrDuplicateTeamName:
		return ErrDuplicateTeamName
	case balance.ErrFinalizeShape:
		return ErrTeamShape
	}
	return err
}
