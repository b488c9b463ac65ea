package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
	EventTeamBanished  EventType = "team-banished"
)

// MatchRecordedEvent is the payload published after a match commit succeeds.
type MatchRecordedEvent struct {
	MatchID    string `msgpack:"match_id"`
	HomeTeamID string `msgpack:"home_team_id"`
	AwayTeamID string `msgpack:"away_team_id"`
	HomeScore  int    `msgpack:"home_score"`
	AwayScore  int    `msgpack:"away_score"`
	PlayedAt   int64  `msgpack:"played_at"`
}
