package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/service"
)

type createRound struct {
	Players []string `json:"players"`
	Round   string   `json:"round"`
}

var (
	ErrPlayersCount = errors.New("exactly 4 players required")
	ErrScoresCount  = errors.New("exactly 4 scores required")
	ErrMissingRound = errors.New("round option required")
)

func (c createRound) Validate() error {
	var err error
	if len(c.Players) != domain.PlayersCount {
		err = errors.Join(err, ErrPlayersCount)
	}
	for i, name := range c.Players {
		if strings.TrimSpace(name) == "" {
			err = errors.Join(err, fmt.Errorf("player %d: %w", i+1, service.ErrEmptyPlayerName))
		}
	}
	if c.Round == "" {
		err = errors.Join(err, ErrMissingRound)
	} else if _, cfgErr := domain.ParseRoundOption(c.Round); cfgErr != nil {
		err = errors.Join(err, cfgErr)
	}
	return err
}

func (c createRound) names() [domain.PlayersCount]string {
	var names [domain.PlayersCount]string
	copy(names[:], c.Players)
	return names
}

type submitHole struct {
	Scores []string `json:"scores"`
}

func (c submitHole) Validate() error {
	if len(c.Scores) != domain.PlayersCount {
		return ErrScoresCount
	}
	return nil
}

func (c submitHole) raw() [domain.PlayersCount]string {
	var raw [domain.PlayersCount]string
	copy(raw[:], c.Scores)
	return raw
}
