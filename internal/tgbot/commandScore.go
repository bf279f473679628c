package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/service"
)

type ScoreCommand struct {
	roundService *service.RoundService
	chats        *chatRounds
}

func (c *ScoreCommand) Run(ctx context.Context, chatID int64, args string) (string, error) {
	id, err := chatRound(c.chats, chatID)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(args)
	if len(fields) != domain.PlayersCount {
		return "", errors.New(`usage: /score 2 1 3 0 - Stableford points in player order`)
	}
	var raw [domain.PlayersCount]string
	copy(raw[:], fields)

	result, round, err := c.roundService.SubmitHole(ctx, id, raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if result.HasNote(domain.NoteEraser) {
		b.WriteString("✏️ ")
	} else {
		b.WriteString("⛳ ")
	}
	b.WriteString(result.Description)
	b.WriteString("\n")
	if round.Finished {
		b.WriteString("🏆 ")
		b.WriteString(service.Summary(round))
		b.WriteString("\n/card for the scorecard, /back to fix the last hole")
		return b.String(), nil
	}
	b.WriteString(service.Standing(round))
	b.WriteString("\nHole ")
	b.WriteString(strconv.Itoa(round.CurrentHole))
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(round.Progress()))
	b.WriteString("% played)")
	return b.String(), nil
}

func (c *ScoreCommand) Help() string {
	return "Score the current hole. Usage: /score 2 1 3 0, points from 0 to 5 in player order."
}
