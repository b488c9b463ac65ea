package http

import (
	"net/http"

	"github.com/mauv0809/ornate-quaffle/internal/config"
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/metrics"
	"github.com/mauv0809/ornate-quaffle/internal/notifier"
	"github.com/mauv0809/ornate-quaffle/internal/pubsub"
	"github.com/mauv0809/ornate-quaffle/internal/recorder"
)

type Server struct {
	Store          league.LeagueStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Recorder       *recorder.Recorder
	PubSub         pubsub.PubSubClient
	Router         *http.ServeMux
}

// recordMatchRequest is the JSON body accepted by the record-match endpoint.
type recordMatchRequest struct {
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
}
