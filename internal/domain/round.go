package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownRoundOption = errors.New("unknown round option")
	ErrInvalidRoundConfig = errors.New("invalid round config")
)

type RoundConfig struct {
	StartHole int
	Holes     int
}

// Round options offered to players: "<holes>-<start hole>".
var roundOptions = map[string]RoundConfig{
	"18-1":  {StartHole: 1, Holes: 18},
	"18-10": {StartHole: 10, Holes: 18},
	"9-1":   {StartHole: 1, Holes: 9},
	"9-10":  {StartHole: 10, Holes: 9},
}

func RoundOptions() []string {
	return []string{"18-1", "18-10", "9-1", "9-10"}
}

func ParseRoundOption(option string) (RoundConfig, error) {
	cfg, ok := roundOptions[option]
	if !ok {
		return RoundConfig{}, fmt.Errorf("%w: %q", ErrUnknownRoundOption, option)
	}
	return cfg, nil
}

func (c RoundConfig) Validate() error {
	if c.StartHole < 1 || c.StartHole > HolesInCycle {
		return fmt.Errorf("%w: start hole %d", ErrInvalidRoundConfig, c.StartHole)
	}
	if c.Holes != 9 && c.Holes != 18 {
		return fmt.Errorf("%w: %d holes", ErrInvalidRoundConfig, c.Holes)
	}
	return nil
}

func (c RoundConfig) String() string {
	return fmt.Sprintf("%d-%d", c.Holes, c.StartHole)
}

type Round struct {
	ID          uuid.UUID
	Roster      Roster
	Config      RoundConfig
	CurrentHole int
	State       MatchState
	Finished    bool
	CreatedAt   time.Time
	FinishedAt  time.Time
}

// Progress is the share of the round played, in whole percent.
func (r Round) Progress() int {
	if r.Config.Holes == 0 {
		return 0
	}
	return (len(r.State.Played)*100 + r.Config.Holes/2) / r.Config.Holes
}
