package recorder

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/metrics"
	"github.com/mauv0809/ornate-quaffle/internal/notifier"
	"github.com/mauv0809/ornate-quaffle/internal/pubsub"
)

// New creates a new Recorder.
func New(store league.LeagueStore, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Recorder {
	return &Recorder{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// RecordMatch persists a completed match through the store's atomic commit and,
// on success, publishes a match-recorded event and announces the result.
// The fan-out is best-effort: a failed notification never rolls back the match.
// In dry-run mode nothing is written and nothing is sent.
func (r *Recorder) RecordMatch(homeTeamID, awayTeamID string, homeScore, awayScore int, dryRun bool) (*league.Match, error) {
	if dryRun {
		log.Info("[Dry Run] Would record match", "home", homeTeamID, "away", awayTeamID, "score_home", homeScore, "score_away", awayScore)
		return nil, nil
	}

	startTime := time.Now()
	match, err := r.store.RecordMatch(homeTeamID, awayTeamID, homeScore, awayScore)
	if err != nil {
		r.metrics.IncRecordingFailed()
		return nil, err
	}
	r.metrics.IncMatchesRecorded()
	r.metrics.ObserveRecordingDuration(time.Since(startTime).Seconds())

	if err := r.pubsub.SendMessage(pubsub.EventMatchRecorded, pubsub.MatchRecordedEvent{
		MatchID:    match.ID,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		HomeScore:  match.HomeScore,
		AwayScore:  match.AwayScore,
		PlayedAt:   match.PlayedAt,
	}); err != nil {
		log.Error("Failed to publish match-recorded event", "error", err, "matchID", match.ID)
	}

	home, err := r.store.GetTeam(match.HomeTeamID)
	if err != nil {
		log.Error("Failed to load home team for notification", "error", err, "matchID", match.ID)
		return match, nil
	}
	away, err := r.store.GetTeam(match.AwayTeamID)
	if err != nil {
		log.Error("Failed to load away team for notification", "error", err, "matchID", match.ID)
		return match, nil
	}
	if err := r.notifier.SendResultNotification(match, home, away, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", match.ID)
	}

	return match, nil
}
