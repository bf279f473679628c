package sqlite

import (
	"fmt"
	"strings"

	"github.com/goserg/vegasgolf/gen/model"
	"github.com/goserg/vegasgolf/internal/domain"

	"github.com/google/uuid"
)

const notesSeparator = "; "

// roundModel is a round row with its hole results joined in.
type roundModel struct {
	model.Rounds
	HoleResults []model.HoleResults
}

func convertRoundFromDomain(round domain.Round) model.Rounds {
	r := model.Rounds{
		ID:          round.ID.String(),
		PlayerA1:    round.Roster[0].Name,
		PlayerA2:    round.Roster[1].Name,
		PlayerB1:    round.Roster[2].Name,
		PlayerB2:    round.Roster[3].Name,
		StartHole:   int32(round.Config.StartHole),
		Holes:       int32(round.Config.Holes),
		CurrentHole: int32(round.CurrentHole),
		TeamA:       int32(round.State.TeamA),
		TeamB:       int32(round.State.TeamB),
		Finished:    round.Finished,
		CreatedAt:   round.CreatedAt.UTC(),
	}
	if !round.FinishedAt.IsZero() {
		finishedAt := round.FinishedAt.UTC()
		r.FinishedAt = &finishedAt
	}
	return r
}

func convertResultsFromDomain(roundID string, results []domain.HoleResult) []model.HoleResults {
	converted := make([]model.HoleResults, 0, len(results))
	for i, result := range results {
		notes := make([]string, 0, len(result.Notes))
		for _, n := range result.Notes {
			notes = append(notes, string(n))
		}
		converted = append(converted, model.HoleResults{
			RoundID:     roundID,
			Seq:         int32(i),
			Hole:        int32(result.Hole),
			ScoreA1:     int32(result.Scores[0]),
			ScoreA2:     int32(result.Scores[1]),
			ScoreB1:     int32(result.Scores[2]),
			ScoreB2:     int32(result.Scores[3]),
			Winner:      int32(result.Winner),
			TeamAValue:  int32(result.TeamAValue),
			TeamBValue:  int32(result.TeamBValue),
			Value:       int32(result.Value),
			Notes:       strings.Join(notes, notesSeparator),
			Description: result.Description,
		})
	}
	return converted
}

func convertRoundToDomain(r roundModel) (domain.Round, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.Round{}, err
	}
	cfg := domain.RoundConfig{StartHole: int(r.StartHole), Holes: int(r.Holes)}
	if err := cfg.Validate(); err != nil {
		return domain.Round{}, fmt.Errorf("round %s: %w", r.ID, err)
	}
	round := domain.Round{
		ID:          id,
		Roster:      domain.NewRoster([domain.PlayersCount]string{r.PlayerA1, r.PlayerA2, r.PlayerB1, r.PlayerB2}),
		Config:      cfg,
		CurrentHole: int(r.CurrentHole),
		Finished:    r.Finished,
		CreatedAt:   r.CreatedAt,
	}
	if r.FinishedAt != nil {
		round.FinishedAt = *r.FinishedAt
	}
	for _, h := range r.HoleResults {
		round.State, err = round.State.ApplyHole(int(h.Hole), convertResultToDomain(h))
		if err != nil {
			return domain.Round{}, err
		}
	}
	return round, nil
}

func convertResultToDomain(h model.HoleResults) domain.HoleResult {
	var notes []domain.Note
	if h.Notes != "" {
		for _, n := range strings.Split(h.Notes, notesSeparator) {
			notes = append(notes, domain.Note(n))
		}
	}
	return domain.HoleResult{
		Hole:        int(h.Hole),
		Scores:      domain.HoleScore{int(h.ScoreA1), int(h.ScoreA2), int(h.ScoreB1), int(h.ScoreB2)},
		Winner:      domain.Team(h.Winner),
		TeamAValue:  int(h.TeamAValue),
		TeamBValue:  int(h.TeamBValue),
		Value:       int(h.Value),
		Notes:       notes,
		Description: h.Description,
	}
}
