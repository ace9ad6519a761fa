package handlers

import "github.com/asimraja/crease/internal/models"

// PlayerCreateRequest represents a request to register a player
type PlayerCreateRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Role   string `json:"role"`
}

// PlayerUpdateRequest represents a request to update a player's rating or role
type PlayerUpdateRequest struct {
	Rating int    `json:"rating"`
	Role   string `json:"role"`
}

// GameCreateRequest represents a request to schedule a game
type GameCreateRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Type       string `json:"type"`
	MaxPlayers int    `json:"max_players"`
	CreatedBy  string `json:"created_by"`
}

// RosterRequest represents a join or cancel request for a game roster
type RosterRequest struct {
	Name string `json:"name"`
}

// TeamGenerateRequest represents a request to draft balanced teams
type TeamGenerateRequest struct {
	Players   []string `json:"players"`
	TeamCount int      `json:"team_count"`
}

// TeamMoveRequest represents a manual adjustment moving a player between teams
type TeamMoveRequest struct {
	Teams  []models.Team `json:"teams"`
	Player string        `json:"player"`
	From   int           `json:"from"`
	To     int           `json:"to"`
}

// TeamFinalizeRequest represents a request to freeze drafted teams
type TeamFinalizeRequest struct {
	Teams    []models.Team `json:"teams"`
	Names    []string      `json:"names"`
	Captains []string      `json:"captains"`
}

// MatchRecordRequest represents a request to record a completed match
type MatchRecordRequest struct {
	GameID int                    `json:"game_id"`
	Date   string                 `json:"date"`
	Teams  []models.FinalizedTeam `json:"teams"`
	Winner string                 `json:"winner"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SettingsUpdateRequest represents a request to update league settings
type SettingsUpdateRequest struct {
	BaseURL    string `json:"base_url"`
	LeagueName string `json:"league_name"`
}
