package recorder_test

import (
	"errors"
	"testing"

	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/metrics"
	"github.com/mauv0809/ornate-quaffle/internal/notifier"
	"github.com/mauv0809/ornate-quaffle/internal/pubsub"
	"github.com/mauv0809/ornate-quaffle/internal/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecorder() (*recorder.Recorder, *league.MockStore, *notifier.Mock, *metrics.Mock, *pubsub.MockPubSubClient) {
	store := league.NewMock()
	notif := notifier.NewMock()
	metricsSvc := metrics.NewMock()
	ps := pubsub.NewMock("TEST")
	return recorder.New(store, notif, metricsSvc, ps), store, notif, metricsSvc, ps
}

func TestRecordMatch_FansOutOnSuccess(t *testing.T) {
	rec, store, notif, metricsSvc, ps := setupRecorder()

	store.RecordMatchFunc = func(homeTeamID, awayTeamID string, homeScore, awayScore int) (*league.Match, error) {
		return &league.Match{ID: "m1", HomeTeamID: homeTeamID, AwayTeamID: awayTeamID, HomeScore: homeScore, AwayScore: awayScore, Status: league.StatusCompleted}, nil
	}
	store.GetTeamFunc = func(teamID string) (*league.Team, error) {
		return &league.Team{ID: teamID, Name: "Team " + teamID}, nil
	}

	match, err := rec.RecordMatch("home", "away", 200, 150, false)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "m1", match.ID)

	require.Len(t, store.RecordMatchCalls, 1)
	assert.Equal(t, league.RecordMatchCall{HomeTeamID: "home", AwayTeamID: "away", HomeScore: 200, AwayScore: 150}, store.RecordMatchCalls[0])

	assert.Equal(t, 1, metricsSvc.MatchesRecorded())
	assert.Zero(t, metricsSvc.RecordingFailed())

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventMatchRecorded), ps.SendMessageCalls[0].Topic)
	event, ok := ps.SendMessageCalls[0].Data.(pubsub.MatchRecordedEvent)
	require.True(t, ok)
	assert.Equal(t, "m1", event.MatchID)

	require.Len(t, notif.SendResultNotificationCalls, 1)
	assert.Equal(t, "m1", notif.SendResultNotificationCalls[0].Match.ID)
}

func TestRecordMatch_NoFanOutOnFailure(t *testing.T) {
	rec, store, notif, metricsSvc, ps := setupRecorder()

	store.RecordMatchFunc = func(homeTeamID, awayTeamID string, homeScore, awayScore int) (*league.Match, error) {
		return nil, league.ErrTeamNotFound
	}

	match, err := rec.RecordMatch("missing", "away", 10, 20, false)
	assert.ErrorIs(t, err, league.ErrTeamNotFound)
	assert.Nil(t, match)

	assert.Zero(t, metricsSvc.MatchesRecorded())
	assert.Equal(t, 1, metricsSvc.RecordingFailed())
	assert.Empty(t, ps.SendMessageCalls)
	assert.Empty(t, notif.SendResultNotificationCalls)
}

func TestRecordMatch_DryRunWritesNothing(t *testing.T) {
	rec, store, notif, _, ps := setupRecorder()

	match, err := rec.RecordMatch("home", "away", 200, 150, true)
	require.NoError(t, err)
	assert.Nil(t, match)

	assert.Empty(t, store.RecordMatchCalls)
	assert.Empty(t, ps.SendMessageCalls)
	assert.Empty(t, notif.SendResultNotificationCalls)
}

func TestRecordMatch_NotificationFailureDoesNotFailRecording(t *testing.T) {
	rec, store, notif, _, _ := setupRecorder()

	store.RecordMatchFunc = func(homeTeamID, awayTeamID string, homeScore, awayScore int) (*league.Match, error) {
		return &league.Match{ID: "m1", HomeTeamID: homeTeamID, AwayTeamID: awayTeamID}, nil
	}
	store.GetTeamFunc = func(teamID string) (*league.Team, error) {
		return &league.Team{ID: teamID}, nil
	}
	notif.SendResultNotificationFunc = func(match *league.Match, home, away *league.Team, dryRun bool) error {
		return errors.New("slack is down")
	}

	match, err := rec.RecordMatch("home", "away", 200, 150, false)
	require.NoError(t, err)
	require.NotNil(t, match)
}
