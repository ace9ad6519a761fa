package repository

import (
	"context"
	"testing"

	apperrors "github.com/asimraja/crease/internal/errors"
	"github.com/asimraja/crease/internal/models"
)

// newTestRepo creates a new in-memory repository for testing.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustCreatePlayer(t *testing.T, repo *Repository, name string, rating int, role string) {
	t.Helper()
	p, err := models.NewPlayer(name, rating, role)
	if err != nil {
		t.Fatalf("NewPlayer(%s) failed: %v", name, err)
	}
	if _, err := repo.CreatePlayer(context.Background(), p); err != nil {
		t.Fatalf("CreatePlayer(%s) failed: %v", name, err)
	}
}

// ==================== Player Tests ====================

func TestCreatePlayer_Basic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p, _ := models.NewPlayer("Asim", 8, models.RoleBatsman)
	id, err := repo.CreatePlayer(ctx, p)
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}
}

func TestCreatePlayer_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	// Same name in a different case must hit the UNIQUE COLLATE NOCASE constraint
	p, _ := models.NewPlayer("ASIM", 5, models.RoleBowler)
	if _, err := repo.CreatePlayer(ctx, p); err == nil {
		t.Error("expected error for duplicate name, got nil")
	}
}

func TestGetPlayer_CaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	got, err := repo.GetPlayer(ctx, "asim")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Name != "Asim" {
		t.Errorf("expected stored name 'Asim', got %q", got.Name)
	}
	if got.Rating != 8 || got.Role != models.RoleBatsman {
		t.Errorf("unexpected player data: %+v", got)
	}
	if got.MatchesPlayed != 0 || got.MatchesWon != 0 || got.Points != 0 {
		t.Errorf("new player should have zero stats: %+v", got)
	}
}

func TestGetPlayer_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetPlayer(context.Background(), "nobody")
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestListPlayers_RegistrationOrder(t *testing.T) {
	repo := newTestRepo(t)

	mustCreatePlayer(t, repo, "Zara", 5, models.RoleBowler)
	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)
	mustCreatePlayer(t, repo, "Mira", 7, models.RoleAllRounder)

	players, err := repo.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	want := []string{"Zara", "Asim", "Mira"}
	if len(players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(players))
	}
	for i, name := range want {
		if players[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, players[i].Name)
		}
	}
}

func TestUpdatePlayer_RatingAndRoleOnly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	if err := repo.UpdatePlayer(ctx, "asim", 3, models.RoleWicketKeeper); err != nil {
		t.Fatalf("UpdatePlayer failed: %v", err)
	}

	got, err := repo.GetPlayer(ctx, "Asim")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Rating != 3 || got.Role != models.RoleWicketKeeper {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Name != "Asim" {
		t.Errorf("update must not rename the player, got %q", got.Name)
	}
}

func TestUpdatePlayer_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdatePlayer(context.Background(), "nobody", 5, models.RoleBowler)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePlayer_Basic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	if err := repo.DeletePlayer(ctx, "ASIM"); err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}
	if _, err := repo.GetPlayer(ctx, "Asim"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}

func TestDeletePlayer_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.DeletePlayer(context.Background(), "nobody"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Game Tests ====================

func TestCreateGame_AssignsSequentialIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 12, Type: models.GameTypeInternal})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	second, err := repo.CreateGame(ctx, models.Game{Date: "2026-09-12", MaxPlayers: 10, Type: models.GameTypeExternal})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if second <= first {
		t.Errorf("expected monotonically increasing ids, got %d then %d", first, second)
	}
}

func TestGetGame_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateGame(ctx, models.Game{
		Date:       "2026-09-05",
		Time:       "18:00",
		Location:   "Oval Park",
		Type:       models.GameTypeInternal,
		MaxPlayers: 12,
		CreatedBy:  "admin",
	})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	g, err := repo.GetGame(ctx, int(id))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if g.Date != "2026-09-05" || g.Time != "18:00" || g.Location != "Oval Park" {
		t.Errorf("unexpected game data: %+v", g)
	}
	if g.MaxPlayers != 12 || g.CreatedBy != "admin" {
		t.Errorf("unexpected game data: %+v", g)
	}
	if len(g.Votes) != 0 {
		t.Errorf("new game should have empty roster, got %v", g.Votes)
	}
}

func TestGetGame_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetGame(context.Background(), 999)
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestJoinGame_AppendsInOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 3, Type: models.GameTypeInternal})

	for _, name := range []string{"Asim", "Zara", "Mira"} {
		if _, err := repo.JoinGame(ctx, int(id), name); err != nil {
			t.Fatalf("JoinGame(%s) failed: %v", name, err)
		}
	}

	g, err := repo.GetGame(ctx, int(id))
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	want := []string{"Asim", "Zara", "Mira"}
	for i, name := range want {
		if g.Votes[i] != name {
			t.Errorf("roster %v, want %v", g.Votes, want)
			break
		}
	}
}

func TestJoinGame_Full(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 1, Type: models.GameTypeInternal})

	if _, err := repo.JoinGame(ctx, int(id), "Asim"); err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}
	if _, err := repo.JoinGame(ctx, int(id), "Zara"); err != ErrGameFull {
		t.Errorf("expected ErrGameFull, got %v", err)
	}

	// Rejected join must not touch the roster
	g, _ := repo.GetGame(ctx, int(id))
	if len(g.Votes) != 1 || g.Votes[0] != "Asim" {
		t.Errorf("roster changed by rejected join: %v", g.Votes)
	}
}

func TestJoinGame_AlreadyVoted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 5, Type: models.GameTypeInternal})

	if _, err := repo.JoinGame(ctx, int(id), "Asim"); err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}
	if _, err := repo.JoinGame(ctx, int(id), "Asim"); err != ErrAlreadyVoted {
		t.Errorf("expected ErrAlreadyVoted, got %v", err)
	}
}

func TestLeaveGame_PreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 5, Type: models.GameTypeInternal})
	for _, name := range []string{"Asim", "Zara", "Mira"} {
		repo.JoinGame(ctx, int(id), name)
	}

	g, err := repo.LeaveGame(ctx, int(id), "Zara")
	if err != nil {
		t.Fatalf("LeaveGame failed: %v", err)
	}
	if len(g.Votes) != 2 || g.Votes[0] != "Asim" || g.Votes[1] != "Mira" {
		t.Errorf("expected [Asim Mira], got %v", g.Votes)
	}
}

func TestLeaveGame_NotVoted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 5, Type: models.GameTypeInternal})

	if _, err := repo.LeaveGame(ctx, int(id), "Asim"); err != ErrNotVoted {
		t.Errorf("expected ErrNotVoted, got %v", err)
	}
}

func TestDeleteGame_MatchKeepsGameID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 5, Type: models.GameTypeInternal})

	match := models.Match{
		ID:     "m-1",
		GameID: int(id),
		Date:   "2026-09-05",
		Winner: "Strikers",
		Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim"}, Strength: 8},
			{Name: "Blasters", Captain: "Zara", Players: []string{"Zara"}, Strength: 5},
		},
	}
	if err := repo.RecordMatch(ctx, match, []string{"Asim", "Zara"}, []string{"Asim"}); err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}

	if err := repo.DeleteGame(ctx, int(id)); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}

	// The match record survives with its (now dangling) game reference
	got, err := repo.GetMatch(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if got.GameID != int(id) {
		t.Errorf("expected game_id %d preserved, got %d", id, got.GameID)
	}
}

// ==================== Match Tests ====================

func TestRecordMatch_StatFanOut(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)
	mustCreatePlayer(t, repo, "Zara", 5, models.RoleBowler)
	mustCreatePlayer(t, repo, "Mira", 7, models.RoleAllRounder)

	match := models.Match{
		ID:     "m-1",
		Date:   "2026-09-05",
		Winner: "Strikers",
		Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim", "Mira"}, Strength: 15},
			{Name: "Blasters", Captain: "Zara", Players: []string{"Zara"}, Strength: 5},
		},
	}
	err := repo.RecordMatch(ctx, match, []string{"Asim", "Mira", "Zara"}, []string{"Asim", "Mira"})
	if err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}

	winner, _ := repo.GetPlayer(ctx, "Asim")
	if winner.MatchesPlayed != 1 || winner.MatchesWon != 1 || winner.Points != 1 {
		t.Errorf("winner stats wrong: %+v", winner)
	}
	loser, _ := repo.GetPlayer(ctx, "Zara")
	if loser.MatchesPlayed != 1 || loser.MatchesWon != 0 || loser.Points != 0 {
		t.Errorf("loser stats wrong: %+v", loser)
	}
}

func TestRecordMatch_SkipsUnregisteredNames(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	match := models.Match{
		ID:     "m-1",
		Date:   "2026-09-05",
		Winner: "Strikers",
		Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim", "Ghost"}, Strength: 8},
			{Name: "Blasters", Captain: "Phantom", Players: []string{"Phantom"}, Strength: 0},
		},
	}
	// Ghost and Phantom are not registered; the record must still go through
	err := repo.RecordMatch(ctx, match, []string{"Asim", "Ghost", "Phantom"}, []string{"Asim", "Ghost"})
	if err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}

	got, err := repo.GetMatch(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if len(got.Teams) != 2 || got.Teams[0].Players[1] != "Ghost" {
		t.Errorf("match record should keep unregistered names: %+v", got.Teams)
	}

	p, _ := repo.GetPlayer(ctx, "Asim")
	if p.MatchesPlayed != 1 || p.MatchesWon != 1 {
		t.Errorf("registered player stats wrong: %+v", p)
	}
}

func TestRecordMatch_DuplicateIDRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)

	match := models.Match{
		ID:     "m-1",
		Date:   "2026-09-05",
		Winner: "Strikers",
		Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim"}, Strength: 8},
			{Name: "Blasters", Captain: "Zara", Players: []string{"Zara"}, Strength: 5},
		},
	}
	if err := repo.RecordMatch(ctx, match, []string{"Asim"}, []string{"Asim"}); err != nil {
		t.Fatalf("first RecordMatch failed: %v", err)
	}

	// Second insert with the same primary key fails before any stat update
	if err := repo.RecordMatch(ctx, match, []string{"Asim"}, []string{"Asim"}); err == nil {
		t.Fatal("expected error for duplicate match id, got nil")
	}

	p, _ := repo.GetPlayer(ctx, "Asim")
	if p.MatchesPlayed != 1 {
		t.Errorf("failed record must not apply stats, matches_played = %d", p.MatchesPlayed)
	}
}

func TestListMatches_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	match := models.Match{
		ID:     "m-1",
		Date:   "2026-09-05",
		Winner: "Strikers",
		Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim"}, Strength: 8},
			{Name: "Blasters", Captain: "Zara", Players: []string{"Zara"}, Strength: 5},
		},
	}
	if err := repo.RecordMatch(ctx, match, nil, nil); err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}

	matches, err := repo.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	got := matches[0]
	if got.ID != "m-1" || got.Winner != "Strikers" || len(got.Teams) != 2 {
		t.Errorf("unexpected match: %+v", got)
	}
	if got.Teams[1].Captain != "Zara" || got.Teams[1].Strength != 5 {
		t.Errorf("team snapshot not preserved: %+v", got.Teams[1])
	}
}

// ==================== Settings Tests ====================

func TestSettings_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetSetting(ctx, "base_url", "http://192.168.1.10:8080"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	got, err := repo.GetSetting(ctx, "base_url")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "http://192.168.1.10:8080" {
		t.Errorf("expected stored value, got %q", got)
	}
}

func TestGetSetting_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.GetSetting(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSetting_Default(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetSetting(context.Background(), "league_name")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got == "" {
		t.Error("expected default league_name to be seeded by migrations")
	}
}

func TestGetLeagueStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Asim", 8, models.RoleBatsman)
	mustCreatePlayer(t, repo, "Zara", 5, models.RoleBowler)
	repo.CreateGame(ctx, models.Game{Date: "2026-09-05", MaxPlayers: 5, Type: models.GameTypeInternal})

	stats, err := repo.GetLeagueStats(ctx)
	if err != nil {
		t.Fatalf("GetLeagueStats failed: %v", err)
	}
	if stats["total_players"] != 2 {
		t.Errorf("expected 2 players, got %v", stats["total_players"])
	}
	if stats["total_games"] != 1 {
		t.Errorf("expected 1 game, got %v", stats["total_games"])
	}
	if stats["total_matches"] != 0 {
		t.Errorf("expected 0 matches, got %v", stats["total_matches"])
	}
}

// ==================== Snapshot Tests ====================

func TestImportSnapshot_ReplacesEverything(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreatePlayer(t, repo, "Old", 5, models.RoleBowler)
	repo.CreateGame(ctx, models.Game{Date: "2026-01-01", MaxPlayers: 5, Type: models.GameTypeInternal})

	players := []models.Player{
		{Name: "Asim", Rating: 8, Role: models.RoleBatsman, MatchesPlayed: 3, MatchesWon: 2, Points: 2},
		{Name: "Zara", Rating: 5, Role: models.RoleBowler},
	}
	games := []models.Game{
		{Date: "2026-09-05", Time: "18:00", MaxPlayers: 10, Type: models.GameTypeInternal, Votes: []string{"Asim"}},
	}
	matches := []models.Match{
		{ID: "m-1", Date: "2026-09-05", Winner: "Strikers", Teams: []models.FinalizedTeam{
			{Name: "Strikers", Captain: "Asim", Players: []string{"Asim"}, Strength: 8},
			{Name: "Blasters", Captain: "Zara", Players: []string{"Zara"}, Strength: 5},
		}},
	}

	if err := repo.ImportSnapshot(ctx, players, games, matches); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	gotPlayers, _ := repo.ListPlayers(ctx)
	if len(gotPlayers) != 2 || gotPlayers[0].Name != "Asim" {
		t.Errorf("import did not replace players: %+v", gotPlayers)
	}
	if gotPlayers[0].MatchesPlayed != 3 || gotPlayers[0].Points != 2 {
		t.Errorf("import must preserve stats: %+v", gotPlayers[0])
	}

	gotGames, _ := repo.ListGames(ctx)
	if len(gotGames) != 1 || len(gotGames[0].Votes) != 1 {
		t.Errorf("import did not replace games: %+v", gotGames)
	}

	gotMatches, _ := repo.ListMatches(ctx)
	if len(gotMatches) != 1 || gotMatches[0].ID != "m-1" {
		t.Errorf("import did not replace matches: %+v", gotMatches)
	}
}
