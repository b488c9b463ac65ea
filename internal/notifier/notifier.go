package notifier

import (
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed matches
	SendResultNotification(match *league.Match, home, away *league.Team, dryRun bool) error
	// For the league table
	SendStandings(table []standings.Standing, dryRun bool) error

	// For formatting responses without posting them
	FormatStandingsResponse(table []standings.Standing) (any, error)
}
