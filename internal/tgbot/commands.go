package tgbot

import (
	"context"
	"errors"

	"github.com/goserg/vegasgolf/internal/service"

	"github.com/google/uuid"
)

type Command interface {
	Run(ctx context.Context, chatID int64, args string) (string, error)
	Help() string
}

type Commands struct {
	list map[string]Command
}

var ErrNoRound = errors.New("no round in this chat, start one with /new")

func NewCommands(rs *service.RoundService) *Commands {
	chats := newChatRounds()
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"new": &NewRoundCommand{
				roundService: rs,
				chats:        chats,
			},
			"score": &ScoreCommand{
				roundService: rs,
				chats:        chats,
			},
			"back": &BackCommand{
				roundService: rs,
				chats:        chats,
			},
			"card": &CardCommand{
				roundService: rs,
				chats:        chats,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, chatID int64, cmd string, args string) (string, error) {
	command, ok := uc.list[cmd]
	if !ok {
		return "", ErrBadRequest
	}
	return command.Run(ctx, chatID, args)
}

func chatRound(chats *chatRounds, chatID int64) (uuid.UUID, error) {
	id, ok := chats.Get(chatID)
	if !ok {
		return uuid.Nil, ErrNoRound
	}
	return id, nil
}
