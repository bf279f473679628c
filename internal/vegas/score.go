// Package vegas scores a hole of a four-player Stableford Vegas match and
// sequences the holes of a round.
package vegas

import (
	"strconv"
	"strings"

	"github.com/goserg/vegasgolf/internal/domain"
)

const eraserPoints = 4

// Score calculates the result of one hole.
// scores - Stableford points by roster position.
// players - roster; positions 0,1 are team A, 2,3 are team B.
// hole - hole number, used in the description only.
func Score(scores domain.HoleScore, players domain.Roster, hole int) domain.HoleResult {
	var notes []domain.Note

	adjusted := scores
	if erase(&adjusted) {
		notes = append(notes, domain.NoteEraser)
	}

	aHigh, aLow := ordered(adjusted, domain.TeamA)
	bHigh, bLow := ordered(adjusted, domain.TeamB)
	aVal := concat(aHigh, aLow)
	bVal := concat(bHigh, bLow)

	aBest := best(scores, domain.TeamA)
	bBest := best(scores, domain.TeamB)
	switch {
	case aVal > bVal && bBest > aBest:
		bVal = concat(bLow, bHigh)
		notes = append(notes, domain.NoteFlipTeamB)
	case bVal > aVal && aBest > bBest:
		aVal = concat(aLow, aHigh)
		notes = append(notes, domain.NoteFlipTeamA)
	}

	winner := domain.Draw
	switch {
	case aVal > bVal:
		winner = domain.TeamA
	case bVal > aVal:
		winner = domain.TeamB
	}
	value := aVal - bVal
	if value < 0 {
		value = -value
	}

	return domain.HoleResult{
		Hole:        hole,
		Scores:      scores,
		Winner:      winner,
		TeamAValue:  aVal,
		TeamBValue:  bVal,
		Value:       value,
		Notes:       notes,
		Description: describe(hole, players, winner, aVal, bVal, value, notes),
	}
}

// erase applies the four-point eraser for the first player scoring exactly 4:
// the higher scoring member of the opposing team drops to zero.
func erase(s *domain.HoleScore) bool {
	for i, v := range s {
		if v != eraserPoints {
			continue
		}
		p := domain.TeamOf(i).Opponent().Positions()
		if s[p[0]] >= s[p[1]] {
			s[p[0]] = 0
		} else {
			s[p[1]] = 0
		}
		return true
	}
	return false
}

func ordered(s domain.HoleScore, t domain.Team) (int, int) {
	p := t.Positions()
	if s[p[0]] >= s[p[1]] {
		return s[p[0]], s[p[1]]
	}
	return s[p[1]], s[p[0]]
}

func best(s domain.HoleScore, t domain.Team) int {
	high, _ := ordered(s, t)
	return high
}

// concat joins the decimal digits of a and b: concat(5, 2) == 52, concat(0, 3) == 3.
func concat(a, b int) int {
	shift := 10
	for b >= shift {
		shift *= 10
	}
	return a*shift + b
}

func describe(hole int, players domain.Roster, winner domain.Team, aVal, bVal, value int, notes []domain.Note) string {
	var buf strings.Builder
	buf.WriteString("Hole ")
	buf.WriteString(strconv.Itoa(hole))
	buf.WriteString(": ")
	if winner == domain.Draw {
		buf.WriteString(domain.DrawnHole)
	} else {
		buf.WriteString(players.Pair(winner))
	}
	buf.WriteString(", ")
	buf.WriteString(strconv.Itoa(aVal))
	buf.WriteString(" vs ")
	buf.WriteString(strconv.Itoa(bVal))
	buf.WriteString(", worth $")
	buf.WriteString(strconv.Itoa(value))
	if len(notes) > 0 {
		buf.WriteString(" (")
		for i, n := range notes {
			if i > 0 {
				buf.WriteString("; ")
			}
			buf.WriteString(string(n))
		}
		buf.WriteString(")")
	}
	return buf.String()
}
