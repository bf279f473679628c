package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/normalize"

	"github.com/google/uuid"
)

const exportVersion = 1

var (
	ErrInvalidImport = errors.New("invalid export file")
	ErrRoundExists   = errors.New("round already exists")
)

type HoleDocument struct {
	Hole        int      `json:"hole"`
	Scores      [4]int   `json:"scores"`
	Winner      string   `json:"winner"`
	TeamAValue  int      `json:"teamAValue"`
	TeamBValue  int      `json:"teamBValue"`
	Value       int      `json:"value"`
	Notes       []string `json:"notes"`
	Description string   `json:"description"`
}

// RoundDocument is the JSON form of a round.
type RoundDocument struct {
	ID          uuid.UUID      `json:"id"`
	Players     [4]string      `json:"players"`
	Round       string         `json:"round"`
	StartHole   int            `json:"startHole"`
	Holes       int            `json:"holes"`
	CurrentHole int            `json:"currentHole"`
	Played      []int          `json:"played"`
	Results     []HoleDocument `json:"results"`
	TeamA       int            `json:"teamA"`
	TeamB       int            `json:"teamB"`
	Standing    string         `json:"standing"`
	Progress    int            `json:"progress"`
	Finished    bool           `json:"finished"`
	CreatedAt   time.Time      `json:"createdAt"`
	FinishedAt  *time.Time     `json:"finishedAt,omitempty"`
}

func NewHoleDocument(result domain.HoleResult) HoleDocument {
	notes := make([]string, 0, len(result.Notes))
	for _, n := range result.Notes {
		notes = append(notes, string(n))
	}
	return HoleDocument{
		Hole:        result.Hole,
		Scores:      result.Scores,
		Winner:      result.Winner.String(),
		TeamAValue:  result.TeamAValue,
		TeamBValue:  result.TeamBValue,
		Value:       result.Value,
		Notes:       notes,
		Description: result.Description,
	}
}

func NewRoundDocument(round domain.Round) RoundDocument {
	results := make([]HoleDocument, 0, len(round.State.Results))
	for _, r := range round.State.Results {
		results = append(results, NewHoleDocument(r))
	}
	played := append(make([]int, 0, len(round.State.Played)), round.State.Played...)
	doc := RoundDocument{
		ID:          round.ID,
		Players:     round.Roster.Names(),
		Round:       round.Config.String(),
		StartHole:   round.Config.StartHole,
		Holes:       round.Config.Holes,
		CurrentHole: round.CurrentHole,
		Played:      played,
		Results:     results,
		TeamA:       round.State.TeamA,
		TeamB:       round.State.TeamB,
		Standing:    Standing(round),
		Progress:    round.Progress(),
		Finished:    round.Finished,
		CreatedAt:   round.CreatedAt,
	}
	if !round.FinishedAt.IsZero() {
		finishedAt := round.FinishedAt
		doc.FinishedAt = &finishedAt
	}
	return doc
}

type export struct {
	Version int           `json:"version"`
	Round   RoundDocument `json:"round"`
}

func (s *RoundService) Export(ctx context.Context, id uuid.UUID) ([]byte, error) {
	round, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(export{
		Version: exportVersion,
		Round:   NewRoundDocument(round),
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Import restores an exported round under its original id. A round with that
// id must not exist yet. Holes are scored again in order, so the stored
// results always follow the current rules.
func (s *RoundService) Import(ctx context.Context, data []byte) (domain.Round, error) {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return domain.Round{}, fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}
	if importData.Version != exportVersion {
		return domain.Round{}, fmt.Errorf("%w: version %d", ErrInvalidImport, importData.Version)
	}
	round, err := s.restore(importData.Round)
	if err != nil {
		return domain.Round{}, err
	}
	_, err = s.Get(ctx, round.ID)
	switch {
	case err == nil:
		return domain.Round{}, fmt.Errorf("%w: %s", ErrRoundExists, round.ID)
	case !errors.Is(err, ErrRoundNotFound):
		return domain.Round{}, err
	}
	if err := s.storage.SaveRound(ctx, round); err != nil {
		return domain.Round{}, fmt.Errorf("save round: %w", err)
	}
	if !round.Finished {
		s.active.Put(round)
	}
	s.log.WithField("round_id", round.ID).Info("round imported")
	return round, nil
}

func (s *RoundService) restore(doc RoundDocument) (domain.Round, error) {
	if doc.ID == uuid.Nil {
		return domain.Round{}, fmt.Errorf("%w: missing round id", ErrInvalidImport)
	}
	cfg, err := domain.ParseRoundOption(doc.Round)
	if err != nil {
		return domain.Round{}, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	names := doc.Players
	for i := range names {
		names[i] = normalize.Name(names[i])
		if names[i] == "" {
			return domain.Round{}, fmt.Errorf("%w: player %d: %w", ErrInvalidImport, i+1, ErrEmptyPlayerName)
		}
	}
	round := domain.Round{
		ID:          doc.ID,
		Roster:      domain.NewRoster(names),
		Config:      cfg,
		CurrentHole: cfg.StartHole,
		CreatedAt:   doc.CreatedAt,
	}
	finishedAt := s.now()
	if doc.FinishedAt != nil {
		finishedAt = *doc.FinishedAt
	}
	for _, h := range doc.Results {
		if round.Finished || h.Hole != round.CurrentHole {
			return domain.Round{}, fmt.Errorf("%w: unexpected hole %d", ErrInvalidImport, h.Hole)
		}
		var raw [domain.PlayersCount]string
		for i, v := range h.Scores {
			raw[i] = strconv.Itoa(v)
		}
		scores, err := ParseScores(raw)
		if err != nil {
			return domain.Round{}, fmt.Errorf("%w: hole %d: %w", ErrInvalidImport, h.Hole, err)
		}
		round, _, err = submit(round, scores, finishedAt)
		if err != nil {
			return domain.Round{}, fmt.Errorf("%w: %w", ErrInvalidImport, err)
		}
	}
	return round, nil
}
