package models

import "strings"

// Player roles recognised by the league
const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All-rounder"
	RoleWicketKeeper = "Wicket Keeper"
)

// Roles lists the valid role tags in display order
var Roles = []string{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// ValidRole reports whether role is one of the recognised role tags
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Game types
const (
	GameTypeInternal = "Internal"
	GameTypeExternal = "External"
)

// Player is a registered league member. Names are unique case-insensitively.
// The stats counters are owned by the match recorder and never edited directly.
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Rating        int    `json:"rating"`
	Role          string `json:"role"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	Points        int    `json:"points"`
}

// NewPlayer builds a player record with fresh stats, validating the
// creation-time invariants (non-empty name, rating in [1,10], known role).
func NewPlayer(name string, rating int, role string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyName
	}
	if rating < 1 || rating > 10 {
		return Player{}, ErrInvalidRating
	}
	if !ValidRole(role) {
		return Player{}, ErrInvalidRole
	}
	return Player{Name: name, Rating: rating, Role: role}, nil
}

// Game is a scheduled fixture players RSVP to. Votes is the ordered roster of
// confirmed names; it never exceeds MaxPlayers and never repeats a name.
type Game struct {
	ID         int      `json:"id"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Location   string   `json:"location"`
	Type       string   `json:"type"`
	MaxPlayers int      `json:"max_players"`
	Votes      []string `json:"votes"`
	CreatedBy  string   `json:"created_by"`
}

// HasVote reports whether name is already on the game's roster
func (g *Game) HasVote(name string) bool {
	for _, v := range g.Votes {
		if v == name {
			return true
		}
	}
	return false
}

// Team is an in-progress draft team. Strength is kept equal to the sum of
// member ratings across every mutation.
type Team struct {
	Players  []Player `json:"players"`
	Strength int      `json:"strength"`
}

// FinalizedTeam is the persisted snapshot of a drafted team. Members are
// captured by name so later edits to a player's rating cannot alter the
// recorded strength.
type FinalizedTeam struct {
	Name     string   `json:"name"`
	Captain  string   `json:"captain"`
	Players  []string `json:"players"`
	Strength int      `json:"strength"`
}

// Match is an immutable record of a played game. GameID may dangle if the
// originating game is deleted; the record stands on its own.
type Match struct {
	ID     string          `json:"id"`
	GameID int             `json:"game_id,omitempty"`
	Date   string          `json:"date"`
	Teams  []FinalizedTeam `json:"teams"`
	Winner string          `json:"winner"`
}

// RankedPlayer is a leaderboard row. WinRate is derived on every build and
// never stored on the player record.
type RankedPlayer struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Rating        int     `json:"rating"`
	Points        int     `json:"points"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	WinRate       float64 `json:"win_rate"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
