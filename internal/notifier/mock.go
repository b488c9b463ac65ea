package notifier

import (
	"sync"

	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/standings"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendResultNotificationFunc  func(match *league.Match, home, away *league.Team, dryRun bool) error
	SendStandingsFunc           func(table []standings.Standing, dryRun bool) error
	FormatStandingsResponseFunc func(table []standings.Standing) (any, error)

	// Call records
	SendResultNotificationCalls []ResultNotificationCall
	SendStandingsCalls          [][]standings.Standing
}

// ResultNotificationCall holds the arguments for a call to SendResultNotification.
type ResultNotificationCall struct {
	Match *league.Match
	Home  *league.Team
	Away  *league.Team
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) SendResultNotification(match *league.Match, home, away *league.Team, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, ResultNotificationCall{Match: match, Home: home, Away: away})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, home, away, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(table []standings.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, table)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(table, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(table []standings.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		return m.FormatStandingsResponseFunc(table)
	}
	return nil, nil
}
