package recorder

import (
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/metrics"
	"github.com/mauv0809/ornate-quaffle/internal/notifier"
	"github.com/mauv0809/ornate-quaffle/internal/pubsub"
)

// Recorder handles the business logic around recording a match: persisting it
// and fanning out metrics, events, and notifications.
type Recorder struct {
	store    league.LeagueStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}
