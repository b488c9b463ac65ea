package league

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	// ErrTeamNotFound is returned when a referenced team id does not resolve.
	// RecordMatch wraps it with the side (home/away) that failed.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPlayerNotFound is returned when a referenced player id does not resolve.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrMatchNotFound is returned when a referenced match id does not resolve.
	ErrMatchNotFound = errors.New("match not found")
	// ErrSameTeam is returned when a match is recorded with identical home and away teams.
	ErrSameTeam = errors.New("home and away team must differ")
	// ErrNegativeScore is returned when a match is recorded with a negative score.
	ErrNegativeScore = errors.New("scores must be non-negative")
)

// House is the category label a team competes under.
type House string

const (
	HouseGryffindor House = "GRYFFINDOR"
	HouseSlytherin  House = "SLYTHERIN"
	HouseHufflepuff House = "HUFFLEPUFF"
	HouseRavenclaw  House = "RAVENCLAW"
)

// Position is a player's role on the pitch.
type Position string

const (
	PositionKeeper Position = "KEEPER"
	PositionChaser Position = "CHASER"
	PositionBeater Position = "BEATER"
	PositionSeeker Position = "SEEKER"
)

// MatchStatus describes the lifecycle state of a match. Recording only ever
// produces StatusCompleted; the other states exist for externally scheduled fixtures.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusCompleted MatchStatus = "COMPLETED"
	StatusPostponed MatchStatus = "POSTPONED"
)

// Team is a registered competitive entity with a win/loss/draw record.
// The counters are mutated only by RecordMatch.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	House     House  `json:"house"`
	Founded   int    `json:"founded"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Draws     int    `json:"draws"`
	Stadium   string `json:"stadium"`
	ManagerID string `json:"manager_id"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// PlayerStats holds a player's performance counters. GamesPlayed is incremented
// exactly once per match the player's team participates in.
type PlayerStats struct {
	GamesPlayed int `json:"games_played"`
	Goals       int `json:"goals"`
	Saves       int `json:"saves"`
	Catches     int `json:"catches"`
	Fouls       int `json:"fouls"`
	Cards       int `json:"cards"`
	Rating      int `json:"rating"`
}

// Player is an individual belonging to exactly one team.
type Player struct {
	ID             string      `json:"id"`
	TeamID         string      `json:"team_id"`
	Name           string      `json:"name"`
	Position       Position    `json:"position"`
	Stats          PlayerStats `json:"stats"`
	Joined         int         `json:"joined"`
	JerseyNumber   int         `json:"jersey_number"`
	Nationality    string      `json:"nationality"`
	MarketValue    int64       `json:"market_value"`
	ContractExpiry int         `json:"contract_expiry"`
}

// Match is an immutable record of one completed contest between two teams.
// The stadium is copied from the home team at recording time.
type Match struct {
	ID         string      `json:"id"`
	HomeTeamID string      `json:"home_team_id"`
	AwayTeamID string      `json:"away_team_id"`
	HomeScore  int         `json:"home_score"`
	AwayScore  int         `json:"away_score"`
	PlayedAt   int64       `json:"played_at"`
	Stadium    string      `json:"stadium"`
	Status     MatchStatus `json:"status"`
}
