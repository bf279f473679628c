package domain

import (
	"errors"
	"fmt"
)

var (
	ErrHoleAlreadyPlayed = errors.New("hole already played")
	ErrInvalidHole       = errors.New("hole must be between 1 and 18")
	ErrNothingToUndo     = errors.New("no holes played")
)

// MatchState is the accumulated state of a round. Played and Results are
// parallel: Results[i] is the result of hole Played[i].
// Transitions never modify the receiver.
type MatchState struct {
	Played  []int
	Results []HoleResult
	TeamA   int
	TeamB   int
}

func (m MatchState) IsPlayed(hole int) bool {
	for _, h := range m.Played {
		if h == hole {
			return true
		}
	}
	return false
}

// ApplyHole records the result of the hole and adds its value to the winner's total.
func (m MatchState) ApplyHole(hole int, result HoleResult) (MatchState, error) {
	if hole < 1 || hole > HolesInCycle {
		return m, fmt.Errorf("%w: %d", ErrInvalidHole, hole)
	}
	if m.IsPlayed(hole) {
		return m, fmt.Errorf("%w: %d", ErrHoleAlreadyPlayed, hole)
	}
	next := MatchState{
		Played:  append(append(make([]int, 0, len(m.Played)+1), m.Played...), hole),
		Results: append(append(make([]HoleResult, 0, len(m.Results)+1), m.Results...), result),
		TeamA:   m.TeamA,
		TeamB:   m.TeamB,
	}
	switch result.Winner {
	case TeamA:
		next.TeamA += result.Value
	case TeamB:
		next.TeamB += result.Value
	}
	return next, nil
}

// UndoLastHole removes the most recent hole and reverses its effect on the totals.
// It returns the removed hole.
func (m MatchState) UndoLastHole() (MatchState, int, error) {
	n := len(m.Played)
	if n == 0 || len(m.Results) == 0 {
		return m, 0, ErrNothingToUndo
	}
	last := m.Results[len(m.Results)-1]
	prev := MatchState{
		Played:  append([]int(nil), m.Played[:n-1]...),
		Results: append([]HoleResult(nil), m.Results[:len(m.Results)-1]...),
		TeamA:   m.TeamA,
		TeamB:   m.TeamB,
	}
	switch last.Winner {
	case TeamA:
		prev.TeamA -= last.Value
	case TeamB:
		prev.TeamB -= last.Value
	}
	return prev, m.Played[n-1], nil
}

// Leader returns the team ahead in the match and by how much. Draw with
// zero margin when the match is tied.
func (m MatchState) Leader() (Team, int) {
	switch {
	case m.TeamA > m.TeamB:
		return TeamA, m.TeamA - m.TeamB
	case m.TeamB > m.TeamA:
		return TeamB, m.TeamB - m.TeamA
	}
	return Draw, 0
}
