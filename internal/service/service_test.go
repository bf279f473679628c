package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/goserg/vegasgolf/internal/cache/mem"
	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu      sync.Mutex
	rounds  map[uuid.UUID]domain.Round
	saves   int
	saveErr error
}

var _ storage.RoundStorage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{rounds: make(map[uuid.UUID]domain.Round)}
}

func (m *memStorage) SaveRound(_ context.Context, round domain.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rounds[round.ID] = round
	m.saves++
	return nil
}

func (m *memStorage) GetRound(_ context.Context, id uuid.UUID) (domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	round, ok := m.rounds[id]
	if !ok {
		return domain.Round{}, storage.ErrNotFound
	}
	return round, nil
}

func (m *memStorage) ListRounds(_ context.Context) ([]domain.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rounds := make([]domain.Round, 0, len(m.rounds))
	for _, r := range m.rounds {
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func newTestService() (*RoundService, *memStorage) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := newMemStorage()
	s := New(st, mem.New(), l)
	s.now = func() time.Time {
		return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	}
	return s, st
}

var names = [4]string{"A1", "A2", "B1", "B2"}

func TestRoundService_NewRound(t *testing.T) {
	s, _ := newTestService()

	round, err := s.NewRound([4]string{" A1 ", "A2", "B1", "B2"}, "9-10")
	require.NoError(t, err)
	assert.Equal(t, "A1", round.Roster[0].Name)
	assert.Equal(t, domain.RoundConfig{StartHole: 10, Holes: 9}, round.Config)
	assert.Equal(t, 10, round.CurrentHole)
	assert.False(t, round.Finished)

	got, err := s.Get(context.Background(), round.ID)
	require.NoError(t, err)
	assert.Equal(t, round, got)
	assert.Len(t, s.Active(), 1)
}

func TestRoundService_NewRoundErrors(t *testing.T) {
	s, _ := newTestService()

	_, err := s.NewRound([4]string{"A1", "", "B1", "  "}, "7-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPlayerName)
	assert.ErrorIs(t, err, domain.ErrUnknownRoundOption)
	assert.Empty(t, s.Active())
}

func TestRoundService_GetUnknown(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRoundNotFound)

	_, _, err = s.SubmitHole(context.Background(), uuid.New(), [4]string{"1", "1", "1", "1"})
	assert.ErrorIs(t, err, ErrRoundNotFound)

	_, err = s.Back(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRoundNotFound)
}

func TestRoundService_SubmitHole(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "18-1")
	require.NoError(t, err)

	result, round, err := s.SubmitHole(ctx, round.ID, [4]string{"2", "1", "3", "0"})
	require.NoError(t, err)
	assert.Equal(t, domain.TeamB, result.Winner)
	assert.Equal(t, 9, result.Value)
	assert.Equal(t, "Hole 1: B1 & B2, 21 vs 30, worth $9", result.Description)
	assert.Equal(t, 2, round.CurrentHole)
	assert.Equal(t, []int{1}, round.State.Played)
	assert.Equal(t, 9, round.State.TeamB)
	assert.Equal(t, "B1 & B2 lead by $9", Standing(round))
}

func TestRoundService_SubmitHoleInvalidScores(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "18-1")
	require.NoError(t, err)

	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"2", "", "6", "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingScore)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	got, err := s.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.Empty(t, got.State.Played)
	assert.Equal(t, 1, got.CurrentHole)
}

func TestRoundService_PlayBackNine(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "9-10")
	require.NoError(t, err)

	var visited []int
	for !round.Finished {
		visited = append(visited, round.CurrentHole)
		_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"3", "1", "2", "2"})
		require.NoError(t, err)
	}
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18}, visited)
	assert.Equal(t, 9*(31-22), round.State.TeamA)
	assert.Equal(t, 0, round.State.TeamB)
	assert.Equal(t, 100, round.Progress())
	assert.False(t, round.FinishedAt.IsZero())
	assert.Equal(t, 1, st.saves)
	assert.Empty(t, s.Active())

	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"1", "1", "1", "1"})
	assert.ErrorIs(t, err, ErrRoundFinished)

	history, err := s.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, round.ID, history[0].ID)
	assert.Equal(t, "A1 & A2 win! Margin: $81", Summary(history[0]))
}

func TestRoundService_BackRoundTrip(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "18-10")
	require.NoError(t, err)

	holes := [][4]string{
		{"2", "1", "3", "0"},
		{"5", "1", "0", "4"},
		{"2", "2", "2", "2"},
		{"4", "1", "5", "2"},
		{"0", "0", "0", "0"},
	}
	for _, h := range holes {
		_, round, err = s.SubmitHole(ctx, round.ID, h)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{10, 11, 12, 13, 14}, round.State.Played)
	assert.Equal(t, 15, round.CurrentHole)

	for i := len(holes) - 1; i >= 0; i-- {
		round, err = s.Back(ctx, round.ID)
		require.NoError(t, err)
		assert.Equal(t, 10+i, round.CurrentHole)
	}
	assert.Equal(t, domain.MatchState{}, round.State)
	assert.Equal(t, 10, round.CurrentHole)

	round, err = s.Back(ctx, round.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
	assert.Equal(t, 10, round.CurrentHole)
}

func TestRoundService_BackReopensFinishedRound(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "9-1")
	require.NoError(t, err)
	for !round.Finished {
		_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"1", "1", "2", "0"})
		require.NoError(t, err)
	}
	require.Equal(t, 9, round.CurrentHole)

	round, err = s.Back(ctx, round.ID)
	require.NoError(t, err)
	assert.False(t, round.Finished)
	assert.True(t, round.FinishedAt.IsZero())
	assert.Equal(t, 9, round.CurrentHole)
	assert.Len(t, round.State.Played, 8)
	assert.Equal(t, 2, st.saves)

	history, err := s.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"1", "1", "2", "0"})
	require.NoError(t, err)
	assert.True(t, round.Finished)
}

func TestRoundService_BackLoadsStoredRound(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()
	stored := domain.Round{
		ID:          uuid.New(),
		Roster:      domain.NewRoster(names),
		Config:      domain.RoundConfig{StartHole: 1, Holes: 9},
		CurrentHole: 1,
		Finished:    true,
	}
	stored.State, _ = stored.State.ApplyHole(1, domain.HoleResult{Hole: 1, Winner: domain.TeamA, Value: 4})
	require.NoError(t, st.SaveRound(ctx, stored))

	round, err := s.Back(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, round.State.TeamA)
	assert.Equal(t, 1, round.CurrentHole)
	assert.False(t, round.Finished)
}

func TestParseScores(t *testing.T) {
	tests := []struct {
		name    string
		raw     [4]string
		want    domain.HoleScore
		wantErr error
	}{
		{name: "valid", raw: [4]string{"0", "5", " 3 ", "2"}, want: domain.HoleScore{0, 5, 3, 2}},
		{name: "missing", raw: [4]string{"1", "", "1", "1"}, wantErr: ErrMissingScore},
		{name: "too high", raw: [4]string{"1", "6", "1", "1"}, wantErr: ErrScoreOutOfRange},
		{name: "negative", raw: [4]string{"-1", "1", "1", "1"}, wantErr: ErrScoreOutOfRange},
		{name: "not a number", raw: [4]string{"1", "1", "two", "1"}, wantErr: ErrScoreOutOfRange},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseScores(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var scoreErr *ScoreError
				assert.ErrorAs(t, err, &scoreErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildScorecard(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "18-1")
	require.NoError(t, err)
	for _, h := range [][4]string{{"2", "1", "3", "0"}, {"4", "1", "3", "2"}, {"1", "1", "1", "1"}} {
		_, round, err = s.SubmitHole(ctx, round.ID, h)
		require.NoError(t, err)
	}

	card := BuildScorecard(round)
	require.Len(t, card.Rows, 3)
	assert.Equal(t, -9, card.Rows[0].RunningTotal)
	assert.Equal(t, "B1 & B2 lead by $9", card.Rows[0].Standing)
	assert.Equal(t, 12, card.Rows[1].RunningTotal)
	assert.Equal(t, "A1 & A2 lead by $12", card.Rows[1].Standing)
	assert.Equal(t, 12, card.Rows[2].RunningTotal)
	assert.Equal(t, domain.HoleScore{4, 1, 3, 2}, card.Rows[1].Scores)
	assert.Equal(t, 3, card.Rows[2].Hole)
	assert.Equal(t, "A1 & A2 lead by $12", card.Standing)
	assert.Equal(t, 17, card.Progress)
}

func TestSummaryTie(t *testing.T) {
	round := domain.Round{Roster: domain.NewRoster(names)}
	assert.Equal(t, "It's a tie!", Summary(round))
	assert.Equal(t, "Match tied", Standing(round))
}

func TestRoundService_Export(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "9-1")
	require.NoError(t, err)
	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"5", "1", "0", "4"})
	require.NoError(t, err)

	data, err := s.Export(ctx, round.ID)
	require.NoError(t, err)

	var doc struct {
		Version int           `json:"version"`
		Round   RoundDocument `json:"round"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, round.ID, doc.Round.ID)
	assert.Equal(t, "9-1", doc.Round.Round)
	require.Len(t, doc.Round.Results, 1)
	assert.Equal(t, "B", doc.Round.Results[0].Winner)
	assert.Equal(t, []string{"4-point eraser used", "High ball flip applied to Team 1"}, doc.Round.Results[0].Notes)
	assert.Nil(t, doc.Round.FinishedAt)
}

func TestRoundService_Import(t *testing.T) {
	ctx := context.Background()
	src, _ := newTestService()
	round, err := src.NewRound(names, "9-10")
	require.NoError(t, err)
	for !round.Finished {
		_, round, err = src.SubmitHole(ctx, round.ID, [4]string{"4", "1", "5", "2"})
		require.NoError(t, err)
	}
	data, err := src.Export(ctx, round.ID)
	require.NoError(t, err)

	dst, st := newTestService()
	imported, err := dst.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, round.ID, imported.ID)
	assert.Equal(t, round.State, imported.State)
	assert.True(t, imported.Finished)
	assert.Equal(t, 1, st.saves)
	assert.Empty(t, dst.Active())

	history, err := dst.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, Summary(round), Summary(history[0]))
}

func TestRoundService_ImportUnfinished(t *testing.T) {
	ctx := context.Background()
	src, _ := newTestService()
	round, err := src.NewRound(names, "18-1")
	require.NoError(t, err)
	_, round, err = src.SubmitHole(ctx, round.ID, [4]string{"2", "1", "3", "0"})
	require.NoError(t, err)
	data, err := src.Export(ctx, round.ID)
	require.NoError(t, err)

	dst, _ := newTestService()
	imported, err := dst.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, imported.CurrentHole)
	assert.Len(t, dst.Active(), 1)

	_, imported, err = dst.SubmitHole(ctx, imported.ID, [4]string{"1", "1", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, imported.State.Played)
}

func TestRoundService_ImportErrors(t *testing.T) {
	id := uuid.New().String()
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `nope`},
		{name: "version", data: `{"version":2,"round":{"id":"` + id + `","round":"9-1","players":["a","b","c","d"]}}`},
		{name: "no id", data: `{"version":1,"round":{"round":"9-1","players":["a","b","c","d"]}}`},
		{name: "option", data: `{"version":1,"round":{"id":"` + id + `","round":"9-3","players":["a","b","c","d"]}}`},
		{name: "empty player", data: `{"version":1,"round":{"id":"` + id + `","round":"9-1","players":["a","","c","d"]}}`},
		{name: "hole order", data: `{"version":1,"round":{"id":"` + id + `","round":"9-1","players":["a","b","c","d"],
			"results":[{"hole":2,"scores":[1,1,1,1]}]}}`},
		{name: "score", data: `{"version":1,"round":{"id":"` + id + `","round":"9-1","players":["a","b","c","d"],
			"results":[{"hole":1,"scores":[1,7,1,1]}]}}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService()
			_, err := s.Import(context.Background(), []byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidImport)
			assert.Equal(t, 0, st.saves)
		})
	}
}

func TestRoundService_FinishSaveFails(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "9-1")
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"3", "1", "2", "2"})
		require.NoError(t, err)
	}

	st.saveErr = errors.New("disk full")
	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"3", "1", "2", "2"})
	require.ErrorIs(t, err, st.saveErr)

	got, err := s.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.False(t, got.Finished)
	assert.Equal(t, 9, got.CurrentHole)
	assert.Len(t, got.State.Played, 8)
	assert.Equal(t, 72, got.State.TeamA)
	assert.Len(t, s.Active(), 1)

	st.saveErr = nil
	_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"3", "1", "2", "2"})
	require.NoError(t, err)
	assert.True(t, round.Finished)
	assert.Equal(t, 81, round.State.TeamA)
	assert.Empty(t, s.Active())

	history, err := s.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRoundService_ReopenSaveFails(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()
	round, err := s.NewRound(names, "9-10")
	require.NoError(t, err)
	for !round.Finished {
		_, round, err = s.SubmitHole(ctx, round.ID, [4]string{"1", "1", "2", "0"})
		require.NoError(t, err)
	}

	st.saveErr = errors.New("disk full")
	_, err = s.Back(ctx, round.ID)
	require.ErrorIs(t, err, st.saveErr)

	got, err := s.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.True(t, got.Finished)
	assert.Len(t, got.State.Played, 9)

	history, err := s.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRoundService_ImportExisting(t *testing.T) {
	ctx := context.Background()
	s, st := newTestService()
	round, err := s.NewRound(names, "9-1")
	require.NoError(t, err)
	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"2", "1", "3", "0"})
	require.NoError(t, err)
	data, err := s.Export(ctx, round.ID)
	require.NoError(t, err)

	_, _, err = s.SubmitHole(ctx, round.ID, [4]string{"1", "1", "1", "1"})
	require.NoError(t, err)

	_, err = s.Import(ctx, data)
	assert.ErrorIs(t, err, ErrRoundExists)
	assert.Equal(t, 0, st.saves)
	got, err := s.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.Len(t, got.State.Played, 2)
}
