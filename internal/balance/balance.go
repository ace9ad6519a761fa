// Package balance implements the league's team drafting core: partitioning a
// pool of rated players into near-equal teams, manual reassignment, and
// finalization into immutable snapshots. All functions are pure and
// deterministic for identical inputs.
package balance

import (
	"errors"
	"sort"

	"github.com/asimraja/crease/internal/models"
)

var (
	ErrTeamCount           = errors.New("team count must be at least 2")
	ErrInsufficientPlayers = errors.New("not enough players for the requested number of teams")
	ErrPlayerNotFound      = errors.New("player is not on the source team")
	ErrTeamIndex           = errors.New("team index out of range")
	ErrInvalidCaptain      = errors.New("captain must be a member of the team")
	ErrTeamNameRequired    = errors.New("team name must not be empty")
	ErrDuplicateTeamName   = errors.New("team names must be unique")
	ErrFinalizeShape       = errors.New("one name and one captain required per team")
)

// Partition splits players into teamCount teams using a snake draft: players
// are sorted by rating descending (ties keep input order) and dealt out in
// alternating direction per round, which keeps cumulative team strength close
// as skill decreases down the list.
func Partition(players []models.Player, teamCount int) ([]models.Team, error) {
	if teamCount < 2 {
		return nil, ErrTeamCount
	}
	if len(players) < teamCount {
		return nil, ErrInsufficientPlayers
	}

	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	teams := make([]models.Team, teamCount)
	for i, p := range sorted {
		round := i / teamCount
		pos := i % teamCount
		idx := pos
		if round%2 == 1 {
			idx = teamCount - 1 - pos
		}
		teams[idx].Players = append(teams[idx].Players, p)
		teams[idx].Strength += p.Rating
	}
	return teams, nil
}

// Move reassigns the named player from teams[from] to teams[to], keeping each
// team's strength equal to the sum of its members' ratings. Moving a player
// onto their current team is a no-op. The input slice is not modified; the
// returned slice shares no team state with it.
func Move(teams []models.Team, playerName string, from, to int) ([]models.Team, error) {
	if from < 0 || from >= len(teams) || to < 0 || to >= len(teams) {
		return nil, ErrTeamIndex
	}

	srcIdx := -1
	for i, p := range teams[from].Players {
		if p.Name == playerName {
			srcIdx = i
			break
		}
	}
	if srcIdx == -1 {
		return nil, ErrPlayerNotFound
	}

	out := make([]models.Team, len(teams))
	for i, t := range teams {
		out[i] = models.Team{
			Players:  append([]models.Player(nil), t.Players...),
			Strength: t.Strength,
		}
	}
	if from == to {
		return out, nil
	}

	moved := out[from].Players[srcIdx]
	out[from].Players = append(out[from].Players[:srcIdx], out[from].Players[srcIdx+1:]...)
	out[from].Strength -= moved.Rating
	out[to].Players = append(out[to].Players, moved)
	out[to].Strength += moved.Rating
	return out, nil
}

// Finalize snapshots drafted teams under operator-supplied names and captains.
// Each captain must be a member of the matching team. The snapshots capture
// member names and strength by value, so later player edits cannot change a
// recorded team.
func Finalize(teams []models.Team, names, captains []string) ([]models.FinalizedTeam, error) {
	if len(names) != len(teams) || len(captains) != len(teams) {
		return nil, ErrFinalizeShape
	}

	seen := make(map[string]bool, len(names))
	final := make([]models.FinalizedTeam, 0, len(teams))
	for i, t := range teams {
		if names[i] == "" {
			return nil, ErrTeamNameRequired
		}
		if seen[names[i]] {
			return nil, ErrDuplicateTeamName
		}
		seen[names[i]] = true

		isMember := false
		members := make([]string, 0, len(t.Players))
		for _, p := range t.Players {
			members = append(members, p.Name)
			if p.Name == captains[i] {
				isMember = true
			}
		}
		if !isMember {
			return nil, ErrInvalidCaptain
		}

		final = append(final, models.FinalizedTeam{
			Name:     names[i],
			Captain:  captains[i],
			Players:  members,
			Strength: t.Strength,
		})
	}
	return final, nil
}
