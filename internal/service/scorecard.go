package service

import (
	"strconv"

	"github.com/goserg/vegasgolf/internal/domain"
)

type ScorecardRow struct {
	Hole   int
	Scores domain.HoleScore
	// RunningTotal is team A's lead after the hole, negative when team B leads.
	RunningTotal int
	Standing     string
	Result       domain.HoleResult
}

type Scorecard struct {
	Round    domain.Round
	Rows     []ScorecardRow
	Standing string
	Summary  string
	Progress int
}

func BuildScorecard(round domain.Round) Scorecard {
	rows := make([]ScorecardRow, 0, len(round.State.Results))
	total := 0
	for i, result := range round.State.Results {
		switch result.Winner {
		case domain.TeamA:
			total += result.Value
		case domain.TeamB:
			total -= result.Value
		}
		rows = append(rows, ScorecardRow{
			Hole:         round.State.Played[i],
			Scores:       result.Scores,
			RunningTotal: total,
			Standing:     standing(round.Roster, total),
			Result:       result,
		})
	}
	return Scorecard{
		Round:    round,
		Rows:     rows,
		Standing: Standing(round),
		Summary:  Summary(round),
		Progress: round.Progress(),
	}
}

// Standing describes who leads the match so far.
func Standing(round domain.Round) string {
	return standing(round.Roster, round.State.TeamA-round.State.TeamB)
}

func standing(roster domain.Roster, lead int) string {
	switch {
	case lead > 0:
		return roster.Pair(domain.TeamA) + " lead by $" + strconv.Itoa(lead)
	case lead < 0:
		return roster.Pair(domain.TeamB) + " lead by $" + strconv.Itoa(-lead)
	}
	return "Match tied"
}

// Summary is the final result line of the round.
func Summary(round domain.Round) string {
	team, margin := round.State.Leader()
	if team == domain.Draw {
		return "It's a tie!"
	}
	return round.Roster.Pair(team) + " win! Margin: $" + strconv.Itoa(margin)
}
