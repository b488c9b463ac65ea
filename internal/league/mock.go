package league

import (
	"sync"
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	RecruitTeamFunc   func(team *Team) error
	GetTeamFunc       func(teamID string) (*Team, error)
	GetAllTeamsFunc   func() ([]Team, error)
	BanishTeamFunc    func(teamID string) error
	SignPlayerFunc    func(player *Player) error
	GetPlayerFunc     func(playerID string) (*Player, error)
	GetAllPlayersFunc func() ([]Player, error)
	GetTeamRosterFunc func(teamID string) ([]Player, error)
	UpdatePlayerFunc  func(player *Player) error
	ReleasePlayerFunc func(playerID string) error
	RecordMatchFunc   func(homeTeamID, awayTeamID string, homeScore, awayScore int) (*Match, error)
	GetMatchFunc      func(matchID string) (*Match, error)
	GetAllMatchesFunc func() ([]*Match, error)

	// Call records
	RecruitTeamCalls   []*Team
	BanishTeamCalls    []string
	SignPlayerCalls    []*Player
	ReleasePlayerCalls []string
	RecordMatchCalls   []RecordMatchCall
	ClearMatchCalls    []string
	ClearCalls         int
}

// RecordMatchCall holds the arguments for a call to RecordMatch.
type RecordMatchCall struct {
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecruitTeamCalls = nil
	m.BanishTeamCalls = nil
	m.SignPlayerCalls = nil
	m.ReleasePlayerCalls = nil
	m.RecordMatchCalls = nil
	m.ClearMatchCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) RecruitTeam(team *Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecruitTeamCalls = append(m.RecruitTeamCalls, team)
	if m.RecruitTeamFunc != nil {
		return m.RecruitTeamFunc(team)
	}
	return nil
}

func (m *MockStore) GetTeam(teamID string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return nil, ErrTeamNotFound
}

func (m *MockStore) GetAllTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllTeamsFunc != nil {
		return m.GetAllTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) BanishTeam(teamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BanishTeamCalls = append(m.BanishTeamCalls, teamID)
	if m.BanishTeamFunc != nil {
		return m.BanishTeamFunc(teamID)
	}
	return nil
}

func (m *MockStore) SignPlayer(player *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SignPlayerCalls = append(m.SignPlayerCalls, player)
	if m.SignPlayerFunc != nil {
		return m.SignPlayerFunc(player)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTeamRoster(teamID string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamRosterFunc != nil {
		return m.GetTeamRosterFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) UpdatePlayer(player *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(player)
	}
	return nil
}

func (m *MockStore) ReleasePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReleasePlayerCalls = append(m.ReleasePlayerCalls, playerID)
	if m.ReleasePlayerFunc != nil {
		return m.ReleasePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) RecordMatch(homeTeamID, awayTeamID string, homeScore, awayScore int) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordMatchCalls = append(m.RecordMatchCalls, RecordMatchCall{homeTeamID, awayTeamID, homeScore, awayScore})
	if m.RecordMatchFunc != nil {
		return m.RecordMatchFunc(homeTeamID, awayTeamID, homeScore, awayScore)
	}
	return &Match{ID: "mock-match", HomeTeamID: homeTeamID, AwayTeamID: awayTeamID, HomeScore: homeScore, AwayScore: awayScore, Status: StatusCompleted}, nil
}

func (m *MockStore) GetMatch(matchID string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, ErrMatchNotFound
}

func (m *MockStore) GetAllMatches() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}

func (m *MockStore) ClearMatch(matchID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, matchID)
}
