package slack

import (
	"fmt"
	"time"

	"github.com/mauv0809/ornate-quaffle/internal/league"
	"github.com/mauv0809/ornate-quaffle/internal/standings"
	"github.com/slack-go/slack"
)

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(match *league.Match, home, away *league.Team) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🏟️ Match finished! 🏟️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details - Use newlines for clear separation.
	detailsText := fmt.Sprintf("%s at %s", match.Stadium, time.Unix(match.PlayedAt, 0).Format("Monday 02 Jan, 15:04"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	scoreText := fmt.Sprintf("%s %d - %d %s", home.Name, match.HomeScore, match.AwayScore, away.Name)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scoreText, true, false), nil, nil))

	var outcomeText string
	switch {
	case match.HomeScore > match.AwayScore:
		outcomeText = fmt.Sprintf("🏆 %s won!", home.Name)
	case match.HomeScore < match.AwayScore:
		outcomeText = fmt.Sprintf("🏆 %s won!", away.Name)
	default:
		outcomeText = "🤝 It's a draw!"
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", outcomeText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the league table.
func (s *Notifier) formatStandings(table []standings.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 League Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(table) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams registered yet. Go recruit some!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, entry := range table {
		var medal string
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		default:
			medal = fmt.Sprintf("%d.", i+1)
		}

		entryText := fmt.Sprintf("%s %s - %d pts (P: %d, W: %d, D: %d, L: %d, Win %%: %.1f)",
			medal, entry.Team.Name, entry.Points, entry.Played,
			entry.Team.Wins, entry.Team.Draws, entry.Team.Losses, entry.WinPercentage)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", entryText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
