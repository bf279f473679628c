package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/service"
)

type NewRoundCommand struct {
	roundService *service.RoundService
	chats        *chatRounds
}

const defaultRoundOption = "18-1"

func (c *NewRoundCommand) Run(_ context.Context, chatID int64, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != domain.PlayersCount && len(fields) != domain.PlayersCount+1 {
		return "", errors.New(`usage: /new A1 A2 B1 B2 [18-1|18-10|9-1|9-10], e.g. "/new tom ann joe kim 9-10"`)
	}
	var names [domain.PlayersCount]string
	copy(names[:], fields)
	option := defaultRoundOption
	if len(fields) > domain.PlayersCount {
		option = fields[domain.PlayersCount]
	}

	round, err := c.roundService.NewRound(names, option)
	if err != nil {
		return "", err
	}
	c.chats.Set(chatID, round.ID)

	var b strings.Builder
	b.WriteString("Round ")
	b.WriteString(round.Config.String())
	b.WriteString(" started\n")
	b.WriteString("Team 1: ")
	b.WriteString(round.Roster.Pair(domain.TeamA))
	b.WriteString("\nTeam 2: ")
	b.WriteString(round.Roster.Pair(domain.TeamB))
	b.WriteString("\nHole ")
	b.WriteString(strconv.Itoa(round.CurrentHole))
	b.WriteString(": send /score with points in player order")
	return b.String(), nil
}

func (c *NewRoundCommand) Help() string {
	return "Start a round. Usage: /new A1 A2 B1 B2 [18-1|18-10|9-1|9-10]. First two players are team 1."
}
