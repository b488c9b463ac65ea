package league

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// RecruitTeam registers a new team. Counters always start at zero regardless of
// what the caller supplies; only RecordMatch may move them.
func (s *store) RecruitTeam(team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.ID == "" {
		team.ID = uuid.New().String()
	}
	team.Wins, team.Losses, team.Draws = 0, 0, 0

	_, err := s.db.Exec(`
		INSERT INTO teams (id, name, house, founded, wins, losses, draws, stadium, manager_id, logo_url)
		VALUES (?, ?, ?, ?, 0, 0, 0, ?, ?, ?)
	`, team.ID, team.Name, team.House, team.Founded, team.Stadium, team.ManagerID, nullIfEmpty(team.LogoURL))
	if err != nil {
		return fmt.Errorf("failed to recruit team: %w", err)
	}

	log.Info("Recruited new team", "teamID", team.ID, "name", team.Name, "house", team.House)
	return nil
}

func (s *store) GetTeam(teamID string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, house, founded, wins, losses, draws, stadium, manager_id, logo_url
		FROM teams WHERE id = ?
	`, teamID)
	team, err := scanTeam(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrTeamNotFound, teamID)
	}
	return team, err
}

func (s *store) GetAllTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, house, founded, wins, losses, draws, stadium, manager_id, logo_url
		FROM teams ORDER BY name
	`)
	if err != nil {
		log.Error("Failed to query all teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

// BanishTeam removes a team and its whole roster. The cascade is done explicitly
// inside one transaction rather than relying on the connection's pragma state.
func (s *store) BanishTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM teams WHERE id = ?)", teamID).Scan(&exists); err != nil {
		tx.Rollback()
		return err
	}
	if !exists {
		tx.Rollback()
		return fmt.Errorf("%w: %q", ErrTeamNotFound, teamID)
	}

	if _, err := tx.Exec("DELETE FROM players WHERE team_id = ?", teamID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to release roster: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM teams WHERE id = ?", teamID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to banish team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Banished team and released its roster", "teamID", teamID)
	return nil
}

// SignPlayer adds a new player to a team's roster.
func (s *store) SignPlayer(player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM teams WHERE id = ?)", player.TeamID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrTeamNotFound, player.TeamID)
	}

	if player.ID == "" {
		player.ID = uuid.New().String()
	}

	_, err := s.db.Exec(`
		INSERT INTO players (id, team_id, name, position, games_played, goals, saves, catches, fouls, cards, rating, joined, jersey_number, nationality, market_value, contract_expiry)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, player.ID, player.TeamID, player.Name, player.Position,
		player.Stats.GamesPlayed, player.Stats.Goals, player.Stats.Saves, player.Stats.Catches,
		player.Stats.Fouls, player.Stats.Cards, player.Stats.Rating,
		player.Joined, player.JerseyNumber, player.Nationality, player.MarketValue, player.ContractExpiry)
	if err != nil {
		return fmt.Errorf("failed to sign player: %w", err)
	}

	log.Info("Signed new player", "playerID", player.ID, "name", player.Name, "teamID", player.TeamID, "position", player.Position)
	return nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(selectPlayer+" WHERE id = ?", playerID)
	player, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerID)
	}
	return player, err
}

func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPlayers(selectPlayer + " ORDER BY name")
}

// GetTeamRoster retrieves every player signed to the given team.
func (s *store) GetTeamRoster(teamID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPlayers(selectPlayer+" WHERE team_id = ? ORDER BY jersey_number", teamID)
}

// UpdatePlayer updates the mutable, non-derived fields of a player. GamesPlayed
// is deliberately not touched here; only RecordMatch advances it.
func (s *store) UpdatePlayer(player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE players SET
			name = ?, position = ?, goals = ?, saves = ?, catches = ?, fouls = ?, cards = ?, rating = ?,
			jersey_number = ?, nationality = ?, market_value = ?, contract_expiry = ?
		WHERE id = ?
	`, player.Name, player.Position,
		player.Stats.Goals, player.Stats.Saves, player.Stats.Catches, player.Stats.Fouls,
		player.Stats.Cards, player.Stats.Rating,
		player.JerseyNumber, player.Nationality, player.MarketValue, player.ContractExpiry,
		player.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, player.ID)
	}
	return nil
}

func (s *store) ReleasePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		return fmt.Errorf("failed to release player: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, playerID)
	}
	log.Info("Released player", "playerID", playerID)
	return nil
}

// RecordMatch persists a completed match and its derived counter updates as one
// transaction: the match row, both team records, and games_played for every
// player on either roster become visible together or not at all.
func (s *store) RecordMatch(homeTeamID, awayTeamID string, homeScore, awayScore int) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if homeTeamID == awayTeamID {
		return nil, ErrSameTeam
	}
	if homeScore < 0 || awayScore < 0 {
		return nil, ErrNegativeScore
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin match transaction: %w", err)
	}

	home, err := getTeamTx(tx, homeTeamID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: home team %q", ErrTeamNotFound, homeTeamID)
		}
		return nil, err
	}
	if _, err := getTeamTx(tx, awayTeamID); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: away team %q", ErrTeamNotFound, awayTeamID)
		}
		return nil, err
	}

	match := &Match{
		ID:         uuid.New().String(),
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		PlayedAt:   time.Now().Unix(),
		Stadium:    home.Stadium,
		Status:     StatusCompleted,
	}

	_, err = tx.Exec(`
		INSERT INTO matches (id, home_team_id, away_team_id, home_score, away_score, played_at, stadium, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, match.ID, match.HomeTeamID, match.AwayTeamID, match.HomeScore, match.AwayScore, match.PlayedAt, match.Stadium, match.Status)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	var homeColumn, awayColumn string
	switch {
	case homeScore > awayScore:
		homeColumn, awayColumn = "wins", "losses"
	case homeScore < awayScore:
		homeColumn, awayColumn = "losses", "wins"
	default:
		homeColumn, awayColumn = "draws", "draws"
	}

	if _, err := tx.Exec("UPDATE teams SET "+homeColumn+" = "+homeColumn+" + 1 WHERE id = ?", homeTeamID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update home team record: %w", err)
	}
	if _, err := tx.Exec("UPDATE teams SET "+awayColumn+" = "+awayColumn+" + 1 WHERE id = ?", awayTeamID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update away team record: %w", err)
	}

	// Every rostered player on either side gets exactly one appearance.
	if _, err := tx.Exec("UPDATE players SET games_played = games_played + 1 WHERE team_id IN (?, ?)", homeTeamID, awayTeamID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update player appearances: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match: %w", err)
	}

	log.Info("Recorded match", "matchID", match.ID, "home", homeTeamID, "away", awayTeamID, "score", fmt.Sprintf("%d-%d", homeScore, awayScore))
	return match, nil
}

func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, home_team_id, away_team_id, home_score, away_score, played_at, stadium, status
		FROM matches WHERE id = ?
	`, matchID)

	match, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrMatchNotFound, matchID)
	}
	return match, err
}

// GetAllMatches retrieves all matches, newest first.
func (s *store) GetAllMatches() ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, home_team_id, away_team_id, home_score, away_score, played_at, stadium, status
		FROM matches ORDER BY played_at DESC
	`)
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"matches", "players", "teams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) ClearMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		log.Error("Failed to clear match", "error", err, "matchID", matchID)
	}
}

const selectPlayer = `
	SELECT id, team_id, name, position, games_played, goals, saves, catches, fouls, cards, rating, joined, jersey_number, nationality, market_value, contract_expiry
	FROM players`

func (s *store) queryPlayers(query string, args ...any) ([]Player, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

// getTeamTx resolves a team inside an open transaction. Returns sql.ErrNoRows
// untouched so callers can map it to the failing side.
func getTeamTx(tx *sql.Tx, teamID string) (*Team, error) {
	row := tx.QueryRow(`
		SELECT id, name, house, founded, wins, losses, draws, stadium, manager_id, logo_url
		FROM teams WHERE id = ?
	`, teamID)
	return scanTeam(row)
}

func scanTeam(scanner interface{ Scan(...any) error }) (*Team, error) {
	var team Team
	var logoURL sql.NullString
	err := scanner.Scan(
		&team.ID, &team.Name, &team.House, &team.Founded,
		&team.Wins, &team.Losses, &team.Draws,
		&team.Stadium, &team.ManagerID, &logoURL,
	)
	if err != nil {
		return nil, err
	}
	team.LogoURL = logoURL.String
	return &team, nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	err := scanner.Scan(
		&p.ID, &p.TeamID, &p.Name, &p.Position,
		&p.Stats.GamesPlayed, &p.Stats.Goals, &p.Stats.Saves, &p.Stats.Catches,
		&p.Stats.Fouls, &p.Stats.Cards, &p.Stats.Rating,
		&p.Joined, &p.JerseyNumber, &p.Nationality, &p.MarketValue, &p.ContractExpiry,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	err := scanner.Scan(
		&m.ID, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeScore, &m.AwayScore, &m.PlayedAt, &m.Stadium, &m.Status,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
