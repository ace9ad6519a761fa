package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/asimraja/crease/internal/errors"
	"github.com/asimraja/crease/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE,
			rating INTEGER NOT NULL,
			role TEXT NOT NULL,
			matches_played INTEGER NOT NULL DEFAULT 0,
			matches_won INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_date TEXT NOT NULL,
			game_time TEXT,
			location TEXT,
			game_type TEXT NOT NULL DEFAULT 'Internal',
			max_players INTEGER NOT NULL,
			votes TEXT NOT NULL DEFAULT '[]',
			created_by TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			game_id INTEGER,
			played_at TEXT NOT NULL,
			winner TEXT NOT NULL,
			teams TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_name ON players(name)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_game ON matches(game_id)`,
	}

	additionalMigrations := []string{
		`ALTER TABLE games ADD COLUMN created_by TEXT`,
		`ALTER TABLE games ADD COLUMN game_type TEXT DEFAULT 'Internal'`,
		`ALTER TABLE matches ADD COLUMN game_id INTEGER`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	for _, migration := range additionalMigrations {
		r.db.Exec(migration) // Ignore errors - columns may already exist
	}

	// Insert default settings if not exists
	// Note: base_url is intentionally not set here - it's set by app.go
	// with the detected LAN IP address on startup
	defaultSettings := map[string]string{
		"league_name": "Cricket League",
	}

	for key, value := range defaultSettings {
		_, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// ==================== Player Methods ====================

// ListPlayers returns all registered players in registration order.
// That order is the tie-break the balancer and leaderboard depend on.
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, rating, role, matches_played, matches_won, points
		FROM players ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Rating, &p.Role, &p.MatchesPlayed, &p.MatchesWon, &p.Points); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer returns a player by name. Lookup is case-insensitive.
func (r *Repository) GetPlayer(ctx context.Context, name string) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, rating, role, matches_played, matches_won, points
		FROM players WHERE name = ? COLLATE NOCASE
	`, name).Scan(&p.ID, &p.Name, &p.Rating, &p.Role, &p.MatchesPlayed, &p.MatchesWon, &p.Points)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("player not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PlayerExists checks if a player with the given name exists (case-insensitive)
func (r *Repository) PlayerExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM players WHERE name = ? COLLATE NOCASE)`, name).Scan(&exists)
	return exists, err
}

// CreatePlayer inserts a new player and returns the assigned id
func (r *Repository) CreatePlayer(ctx context.Context, p models.Player) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO players (name, rating, role, matches_played, matches_won, points)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.Name, p.Rating, p.Role, p.MatchesPlayed, p.MatchesWon, p.Points)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdatePlayer changes a player's rating and role. Name and stats are immutable
// through this path.
func (r *Repository) UpdatePlayer(ctx context.Context, name string, rating int, role string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE players SET rating = ?, role = ? WHERE name = ? COLLATE NOCASE`,
		rating, role, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlayer removes a player from the registry. Match history referencing
// the name is left untouched.
func (r *Repository) DeletePlayer(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE name = ? COLLATE NOCASE`, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Game Methods ====================

func scanGame(votesJSON string, g *models.Game) error {
	g.Votes = []string{}
	if votesJSON == "" {
		return nil
	}
	return json.Unmarshal([]byte(votesJSON), &g.Votes)
}

// ListGames returns all scheduled games, newest first
func (r *Repository) ListGames(ctx context.Context) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_date, COALESCE(game_time, ''), COALESCE(location, ''),
		       COALESCE(game_type, 'Internal'), max_players, votes, COALESCE(created_by, '')
		FROM games ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		var votesJSON string
		if err := rows.Scan(&g.ID, &g.Date, &g.Time, &g.Location, &g.Type, &g.MaxPlayers, &votesJSON, &g.CreatedBy); err != nil {
			return nil, err
		}
		if err := scanGame(votesJSON, &g); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetGame returns a game by id
func (r *Repository) GetGame(ctx context.Context, id int) (*models.Game, error) {
	var g models.Game
	var votesJSON string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, game_date, COALESCE(game_time, ''), COALESCE(location, ''),
		       COALESCE(game_type, 'Internal'), max_players, votes, COALESCE(created_by, '')
		FROM games WHERE id = ?
	`, id).Scan(&g.ID, &g.Date, &g.Time, &g.Location, &g.Type, &g.MaxPlayers, &votesJSON, &g.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("game not found")
	}
	if err != nil {
		return nil, err
	}
	if err := scanGame(votesJSON, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGame inserts a new game and returns the assigned id
func (r *Repository) CreateGame(ctx context.Context, g models.Game) (int64, error) {
	votes := g.Votes
	if votes == nil {
		votes = []string{}
	}
	votesJSON, err := json.Marshal(votes)
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO games (game_date, game_time, location, game_type, max_players, votes, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.Date, g.Time, g.Location, g.Type, g.MaxPlayers, string(votesJSON), g.CreatedBy)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteGame removes a game. Matches recorded from it keep their dangling
// game_id; history is never rewritten.
func (r *Repository) DeleteGame(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// JoinGame appends name to the game's roster inside a transaction so that two
// concurrent joins cannot both take the last slot. Returns the updated game.
func (r *Repository) JoinGame(ctx context.Context, id int, name string) (*models.Game, error) {
	return r.mutateRoster(ctx, id, func(g *models.Game) error {
		if g.HasVote(name) {
			return ErrAlreadyVoted
		}
		if len(g.Votes) >= g.MaxPlayers {
			return ErrGameFull
		}
		g.Votes = append(g.Votes, name)
		return nil
	})
}

// LeaveGame removes name from the game's roster inside a transaction,
// preserving the order of the remaining votes. Returns the updated game.
func (r *Repository) LeaveGame(ctx context.Context, id int, name string) (*models.Game, error) {
	return r.mutateRoster(ctx, id, func(g *models.Game) error {
		for i, v := range g.Votes {
			if v == name {
				g.Votes = append(g.Votes[:i], g.Votes[i+1:]...)
				return nil
			}
		}
		return ErrNotVoted
	})
}

// mutateRoster runs a read-modify-write cycle on a game's votes under a
// single transaction. The mutate callback sees the current roster and either
// edits it or rejects the change with a sentinel error.
func (r *Repository) mutateRoster(ctx context.Context, id int, mutate func(*models.Game) error) (*models.Game, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var g models.Game
	var votesJSON string
	err = tx.QueryRowContext(ctx, `
		SELECT id, game_date, COALESCE(game_time, ''), COALESCE(location, ''),
		       COALESCE(game_type, 'Internal'), max_players, votes, COALESCE(created_by, '')
		FROM games WHERE id = ?
	`, id).Scan(&g.ID, &g.Date, &g.Time, &g.Location, &g.Type, &g.MaxPlayers, &votesJSON, &g.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("game not found")
	}
	if err != nil {
		return nil, err
	}
	if err := scanGame(votesJSON, &g); err != nil {
		return nil, err
	}

	if err := mutate(&g); err != nil {
		return nil, err
	}

	updated, err := json.Marshal(g.Votes)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE games SET votes = ? WHERE id = ?`, string(updated), id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ==================== Match Methods ====================

// ListMatches returns all recorded matches, newest first
func (r *Repository) ListMatches(ctx context.Context) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, COALESCE(game_id, 0), played_at, winner, teams
		FROM matches ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var m models.Match
		var teamsJSON string
		if err := rows.Scan(&m.ID, &m.GameID, &m.Date, &m.Winner, &teamsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(teamsJSON), &m.Teams); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetMatch returns a match by id
func (r *Repository) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var m models.Match
	var teamsJSON string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, COALESCE(game_id, 0), played_at, winner, teams
		FROM matches WHERE id = ?
	`, id).Scan(&m.ID, &m.GameID, &m.Date, &m.Winner, &teamsJSON)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("match not found")
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(teamsJSON), &m.Teams); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordMatch inserts the match row and applies the stat fan-out in a single
// transaction: every participant gets matches_played+1, every member of the
// winning team additionally gets matches_won+1 and points+1. Names with no
// matching registry row are skipped silently; the match record keeps them.
func (r *Repository) RecordMatch(ctx context.Context, m models.Match, participants, winners []string) error {
	teamsJSON, err := json.Marshal(m.Teams)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var gameID interface{}
	if m.GameID != 0 {
		gameID = m.GameID
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO matches (id, game_id, played_at, winner, teams)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, gameID, m.Date, m.Winner, string(teamsJSON)); err != nil {
		return err
	}

	for _, name := range participants {
		if _, err := tx.ExecContext(ctx,
			`UPDATE players SET matches_played = matches_played + 1 WHERE name = ? COLLATE NOCASE`,
			name); err != nil {
			return err
		}
	}
	for _, name := range winners {
		if _, err := tx.ExecContext(ctx,
			`UPDATE players SET matches_won = matches_won + 1, points = points + 1 WHERE name = ? COLLATE NOCASE`,
			name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting updates a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// GetLeagueStats returns overall league statistics
func (r *Repository) GetLeagueStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalPlayers int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&totalPlayers); err != nil {
		return nil, err
	}
	stats["total_players"] = totalPlayers

	var totalGames int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&totalGames); err != nil {
		return nil, err
	}
	stats["total_games"] = totalGames

	var totalMatches int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&totalMatches); err != nil {
		return nil, err
	}
	stats["total_matches"] = totalMatches

	var totalPoints sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT SUM(points) FROM players`).Scan(&totalPoints); err != nil {
		return nil, err
	}
	stats["total_points"] = int(totalPoints.Int64)

	return stats, nil
}

// ==================== Snapshot Methods ====================

// ImportSnapshot replaces the players, games and matches tables with the
// supplied collections in one transaction. Settings are left alone.
func (r *Repository) ImportSnapshot(ctx context.Context, players []models.Player, games []models.Game, matches []models.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"players", "games", "matches"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, p := range players {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO players (name, rating, role, matches_played, matches_won, points)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.Name, p.Rating, p.Role, p.MatchesPlayed, p.MatchesWon, p.Points); err != nil {
			return err
		}
	}

	for _, g := range games {
		votes := g.Votes
		if votes == nil {
			votes = []string{}
		}
		votesJSON, err := json.Marshal(votes)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO games (game_date, game_time, location, game_type, max_players, votes, created_by)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, g.Date, g.Time, g.Location, g.Type, g.MaxPlayers, string(votesJSON), g.CreatedBy); err != nil {
			return err
		}
	}

	for _, m := range matches {
		teamsJSON, err := json.Marshal(m.Teams)
		if err != nil {
			return err
		}
		var gameID interface{}
		if m.GameID != 0 {
			gameID = m.GameID
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO matches (id, game_id, played_at, winner, teams)
			VALUES (?, ?, ?, ?, ?)
		`, m.ID, gameID, m.Date, m.Winner, string(teamsJSON)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
