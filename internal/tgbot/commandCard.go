package tgbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/goserg/vegasgolf/internal/service"
)

type CardCommand struct {
	roundService *service.RoundService
	chats        *chatRounds
}

func (c *CardCommand) Run(ctx context.Context, chatID int64, _ string) (string, error) {
	id, err := chatRound(c.chats, chatID)
	if err != nil {
		return "", err
	}
	round, err := c.roundService.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return formatScorecard(service.BuildScorecard(round)), nil
}

func (c *CardCommand) Help() string {
	return "Show the scorecard of the round"
}

func formatScorecard(card service.Scorecard) string {
	var buf strings.Builder
	buf.WriteString("Hole | ")
	names := card.Round.Roster.Names()
	buf.WriteString(strings.Join(names[:], " "))
	buf.WriteString("\n")
	for _, row := range card.Rows {
		buf.WriteString(strconv.Itoa(row.Hole))
		buf.WriteString(" | ")
		for i, s := range row.Scores {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(strconv.Itoa(s))
		}
		buf.WriteString(" | ")
		buf.WriteString(row.Standing)
		buf.WriteString("\n")
	}
	if len(card.Rows) == 0 {
		buf.WriteString("No holes played\n")
	}
	if card.Round.Finished {
		buf.WriteString(card.Summary)
	} else {
		buf.WriteString(card.Standing)
	}
	return buf.String()
}
