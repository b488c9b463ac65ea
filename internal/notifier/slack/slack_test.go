package slack

import (
	"context"
	"testing"

	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/metrics"
	"github.com/mauv0809/ornate-quaffle/internal/standings"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlackAPI captures PostMessageContext calls instead of talking to Slack.
type fakeSlackAPI struct {
	calls int
	err   error
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "12345.6789", nil
}

func fixtureMatch() (*league.Match, *league.Team, *league.Team) {
	match := &league.Match{
		ID:         "m1",
		HomeTeamID: "t1",
		AwayTeamID: "t2",
		HomeScore:  200,
		AwayScore:  150,
		PlayedAt:   1678886400,
		Stadium:    "Hogwarts Pitch",
		Status:     league.StatusCompleted,
	}
	home := &league.Team{ID: "t1", Name: "Gryffindor Lions", Stadium: "Hogwarts Pitch"}
	away := &league.Team{ID: "t2", Name: "Slytherin Serpents", Stadium: "Dungeon Arena"}
	return match, home, away
}

func TestSendResultNotification(t *testing.T) {
	api := &fakeSlackAPI{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	match, home, away := fixtureMatch()
	err := n.SendResultNotification(match, home, away, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}

func TestSendResultNotification_DryRunSkipsAPI(t *testing.T) {
	api := &fakeSlackAPI{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	match, home, away := fixtureMatch()
	err := n.SendResultNotification(match, home, away, true)
	require.NoError(t, err)
	assert.Zero(t, api.calls, "dry run must not hit the Slack API")
}

func TestFormatResultNotification_Outcomes(t *testing.T) {
	n := NewNotifierWithAPI(&fakeSlackAPI{}, "C123", metrics.NewMock())

	match, home, away := fixtureMatch()
	msg := n.formatResultNotification(match, home, away)
	require.NotEmpty(t, msg.Blocks.BlockSet)

	score, ok := msg.Blocks.BlockSet[2].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Gryffindor Lions 200 - 150 Slytherin Serpents", score.Text.Text)

	match.HomeScore, match.AwayScore = 120, 120
	msg = n.formatResultNotification(match, home, away)
	assert.NotEmpty(t, msg.Blocks.BlockSet)
}

func TestFormatStandings(t *testing.T) {
	n := NewNotifierWithAPI(&fakeSlackAPI{}, "C123", metrics.NewMock())

	t.Run("empty table", func(t *testing.T) {
		msg := n.formatStandings(nil)
		// Header plus the "no teams" section.
		assert.Len(t, msg.Blocks.BlockSet, 2)
	})

	t.Run("ranked table", func(t *testing.T) {
		table := standings.Calculate([]league.Team{
			{ID: "t1", Name: "Gryffindor Lions", Wins: 10, Losses: 3, Draws: 2},
			{ID: "t2", Name: "Slytherin Serpents", Wins: 9, Losses: 4, Draws: 2},
		})
		msg := n.formatStandings(table)
		require.Len(t, msg.Blocks.BlockSet, 3)

		leader, ok := msg.Blocks.BlockSet[1].(*slack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, leader.Text.Text, "Gryffindor Lions - 32 pts")
	})
}
