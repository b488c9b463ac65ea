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

func NewServer(store league.LeagueStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, recorder *recorder.Recorder, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Recorder:       recorder,
		PubSub:         pubsub,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/recruit-team", Chain(s.RecruitTeamHandler(), paramsMiddleware))
	s.Router.Handle("/banish-team", Chain(s.BanishTeamHandler(), paramsMiddleware))
	s.Router.Handle("/team-roster", Chain(s.TeamRosterHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/sign-player", Chain(s.SignPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/update-player", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/release-player", Chain(s.ReleasePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/record-match", Chain(s.RecordMatchHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("/notify-standings", Chain(s.NotifyStandingsHandler(), paramsMiddleware))
	s.Router.Handle("/broadcast-standings", Chain(s.BroadcastStandingsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/standings", Chain(s.StandingsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
