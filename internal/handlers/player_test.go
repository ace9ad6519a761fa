package handlers_test

import (
	"net/http"
	"testing"

	"github.com/asimraja/crease/internal/handlers"
	"github.com/asimraja/crease/internal/models"
)

func TestCreatePlayer(t *testing.T) {
	s := newTestSetup(t)

	rec := s.do(t, http.MethodPost, "/api/players", handlers.PlayerCreateRequest{
		Name: "Asim", Rating: 8, Role: "Batsman",
	}, s.adminCookie)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var player models.Player
	decodeBody(t, rec, &player)
	if player.Name != "Asim" || player.Rating != 8 || player.Role != "Batsman" {
		t.Errorf("unexpected player: %+v", player)
	}
	if player.ID == 0 {
		t.Error("expected assigned player ID")
	}
	if player.Points != 0 || player.MatchesPlayed != 0 {
		t.Errorf("expected fresh stats, got %+v", player)
	}
}

func TestCreatePlayer_ValidationErrors(t *testing.T) {
	s := newTestSetup(t)

	tests := []struct {
		name string
		req  handlers.PlayerCreateRequest
	}{
		{"empty name", handlers.PlayerCreateRequest{Name: "", Rating: 5, Role: "Bowler"}},
		{"rating too low", handlers.PlayerCreateRequest{Name: "Asim", Rating: 0, Role: "Bowler"}},
		{"rating too high", handlers.PlayerCreateRequest{Name: "Asim", Rating: 11, Role: "Bowler"}},
		{"unknown role", handlers.PlayerCreateRequest{Name: "Asim", Rating: 5, Role: "Goalkeeper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/players", tt.req, s.adminCookie)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreatePlayer_DuplicateNameConflict(t *testing.T) {
	s := newTestSetup(t)
	s.addPlayer(t, "Asim", 8, "Batsman")

	rec := s.do(t, http.MethodPost, "/api/players", handlers.PlayerCreateRequest{
		Name: "ASIM", Rating: 5, Role: "Bowler",
	}, s.adminCookie)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for case-insensitive duplicate, got %d", rec.Code)
	}
}

func TestListPlayers_RegistrationOrder(t *testing.T) {
	s := newTestSetup(t)
	s.addPlayer(t, "Chand", 6, "Bowler")
	s.addPlayer(t, "Asim", 8, "Batsman")
	s.addPlayer(t, "Bilal", 7, "All-rounder")

	rec := s.do(t, http.MethodGet, "/api/players", nil, s.playerCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var players []models.Player
	decodeBody(t, rec, &players)
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	want := []string{"Chand", "Asim", "Bilal"}
	for i, name := range want {
		if players[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, players[i].Name)
		}
	}
}

func TestGetPlayer_CaseInsensitive(t *testing.T) {
	s := newTestSetup(t)
	s.addPlayer(t, "Asim", 8, "Batsman")

	rec := s.do(t, http.MethodGet, "/api/players/asim", nil, s.playerCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var player models.Player
	decodeBody(t, rec, &player)
	if player.Name != "Asim" {
		t.Errorf("expected canonical name Asim, got %s", player.Name)
	}
}

func TestGetPlayer_NotFound(t *testing.T) {
	s := newTestSetup(t)

	rec := s.do(t, http.MethodGet, "/api/players/ghost", nil, s.playerCookie)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdatePlayer(t *testing.T) {
	s := newTestSetup(t)
	s.addPlayer(t, "Asim", 8, "Batsman")

	rec := s.do(t, http.MethodPut, "/api/players/Asim", handlers.PlayerUpdateRequest{
		Rating: 9, Role: "All-rounder",
	}, s.adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var player models.Player
	decodeBody(t, rec, &player)
	if player.Rating != 9 || player.Role != "All-rounder" {
		t.Errorf("unexpected updated player: %+v", player)
	}
}

func TestUpdatePlayer_NotFound(t *testing.T) {
	s := newTestSetup(t)

	rec := s.do(t, http.MethodPut, "/api/players/ghost", handlers.PlayerUpdateRequest{
		Rating: 5, Role: "Bowler",
	}, s.adminCookie)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeletePlayer(t *testing.T) {
	s := newTestSetup(t)
	s.addPlayer(t, "Asim", 8, "Batsman")

	rec := s.do(t, http.MethodDelete, "/api/players/Asim", nil, s.adminCookie)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/api/players/Asim", nil, s.playerCookie)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}
