package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/vegasgolf/internal/cache/mem"
	"github.com/goserg/vegasgolf/internal/domain"
	"github.com/goserg/vegasgolf/internal/normalize"
	"github.com/goserg/vegasgolf/internal/storage"
	"github.com/goserg/vegasgolf/internal/vegas"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRoundNotFound   = errors.New("round not found")
	ErrRoundFinished   = errors.New("round is finished")
	ErrEmptyPlayerName = errors.New("enter all player names")
)

type RoundService struct {
	active  *mem.Cache
	storage storage.RoundStorage
	log     *logrus.Entry
	now     func() time.Time
}

func New(roundStorage storage.RoundStorage, active *mem.Cache, log *logrus.Logger) *RoundService {
	return &RoundService{
		active:  active,
		storage: roundStorage,
		log:     log.WithField("name", "round_service"),
		now:     time.Now,
	}
}

// NewRound starts a round for four players. option is one of domain.RoundOptions.
func (s *RoundService) NewRound(names [domain.PlayersCount]string, option string) (domain.Round, error) {
	var err error
	for i := range names {
		names[i] = normalize.Name(names[i])
		if names[i] == "" {
			err = errors.Join(err, fmt.Errorf("player %d: %w", i+1, ErrEmptyPlayerName))
		}
	}
	cfg, cfgErr := domain.ParseRoundOption(option)
	err = errors.Join(err, cfgErr)
	if err != nil {
		return domain.Round{}, err
	}

	round := domain.Round{
		ID:          uuid.New(),
		Roster:      domain.NewRoster(names),
		Config:      cfg,
		CurrentHole: cfg.StartHole,
		CreatedAt:   s.now(),
	}
	s.active.Put(round)
	s.log.WithFields(logrus.Fields{
		"round_id": round.ID,
		"round":    cfg.String(),
	}).Info("round started")
	return round, nil
}

func (s *RoundService) Get(ctx context.Context, id uuid.UUID) (domain.Round, error) {
	round, ok := s.active.Get(id)
	if ok {
		return round, nil
	}
	round, err := s.storage.GetRound(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Round{}, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
		}
		return domain.Round{}, err
	}
	return round, nil
}

// Active lists unfinished rounds, newest first.
func (s *RoundService) Active() []domain.Round {
	return s.active.List()
}

// History lists finished rounds from storage.
func (s *RoundService) History(ctx context.Context) ([]domain.Round, error) {
	rounds, err := s.storage.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	finished := rounds[:0]
	for i := range rounds {
		if rounds[i].Finished {
			finished = append(finished, rounds[i])
		}
	}
	return finished, nil
}

// SubmitHole scores the current hole of the round from raw input and moves
// the round to the next hole. Once the last hole is played the round is saved
// and leaves the active rounds. If the save fails the hole is not recorded.
func (s *RoundService) SubmitHole(ctx context.Context, id uuid.UUID, raw [domain.PlayersCount]string) (domain.HoleResult, domain.Round, error) {
	scores, err := ParseScores(raw)
	if err != nil {
		return domain.HoleResult{}, domain.Round{}, err
	}
	if err := s.load(ctx, id); err != nil {
		return domain.HoleResult{}, domain.Round{}, err
	}

	var result domain.HoleResult
	round, ok, err := s.active.Update(id, func(r domain.Round) (domain.Round, error) {
		next, res, err := submit(r, scores, s.now())
		if err != nil {
			return r, err
		}
		if next.Finished {
			if err := s.storage.SaveRound(ctx, next); err != nil {
				return r, fmt.Errorf("save round: %w", err)
			}
		}
		result = res
		return next, nil
	})
	if !ok {
		return domain.HoleResult{}, domain.Round{}, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return domain.HoleResult{}, round, err
	}

	log := s.log.WithFields(logrus.Fields{
		"round_id": id,
		"hole":     result.Hole,
		"winner":   result.Winner.String(),
		"value":    result.Value,
	})
	log.Debug("hole scored")
	if round.Finished {
		s.active.Delete(id)
		log.WithFields(logrus.Fields{
			"team_a": round.State.TeamA,
			"team_b": round.State.TeamB,
		}).Info("round finished")
	}
	return result, round, nil
}

// Back removes the last played hole of the round and makes it current again.
// A finished round is reopened.
func (s *RoundService) Back(ctx context.Context, id uuid.UUID) (domain.Round, error) {
	if err := s.load(ctx, id); err != nil {
		return domain.Round{}, err
	}
	round, ok, err := s.active.Update(id, func(r domain.Round) (domain.Round, error) {
		prev, err := back(r)
		if err != nil {
			return prev, err
		}
		if r.Finished {
			if err := s.storage.SaveRound(ctx, prev); err != nil {
				return r, fmt.Errorf("save round: %w", err)
			}
		}
		return prev, nil
	})
	if !ok {
		return domain.Round{}, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return round, err
	}
	s.log.WithFields(logrus.Fields{
		"round_id": id,
		"hole":     round.CurrentHole,
	}).Debug("hole undone")
	return round, nil
}

// load brings a stored round back to the active rounds.
func (s *RoundService) load(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.active.Get(id); ok {
		return nil
	}
	round, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	s.active.Put(round)
	return nil
}

func submit(round domain.Round, scores domain.HoleScore, now time.Time) (domain.Round, domain.HoleResult, error) {
	if round.Finished {
		return round, domain.HoleResult{}, ErrRoundFinished
	}
	result := vegas.Score(scores, round.Roster, round.CurrentHole)
	state, err := round.State.ApplyHole(round.CurrentHole, result)
	if err != nil {
		return round, domain.HoleResult{}, err
	}
	round.State = state

	next, ok := vegas.NextHole(round.CurrentHole, vegas.PlayedSet(state.Played), round.Config.Holes)
	if !ok {
		round.Finished = true
		round.FinishedAt = now
		return round, result, nil
	}
	round.CurrentHole = next
	return round, result, nil
}

func back(round domain.Round) (domain.Round, error) {
	state, hole, err := round.State.UndoLastHole()
	if err != nil {
		round.CurrentHole = round.Config.StartHole
		return round, err
	}
	round.State = state
	round.CurrentHole = hole
	round.Finished = false
	round.FinishedAt = time.Time{}
	return round, nil
}
