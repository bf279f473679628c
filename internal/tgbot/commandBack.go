package tgbot

import (
	"context"
	"strconv"

	"github.com/goserg/vegasgolf/internal/service"
)

type BackCommand struct {
	roundService *service.RoundService
	chats        *chatRounds
}

func (c *BackCommand) Run(ctx context.Context, chatID int64, _ string) (string, error) {
	id, err := chatRound(c.chats, chatID)
	if err != nil {
		return "", err
	}
	round, err := c.roundService.Back(ctx, id)
	if err != nil {
		return "", err
	}
	return "Back to hole " + strconv.Itoa(round.CurrentHole) + "\n" + service.Standing(round), nil
}

func (c *BackCommand) Help() string {
	return "Undo the last scored hole"
}
