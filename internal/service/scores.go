package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/vegasgolf/internal/domain"
)

const MaxPoints = 5

var (
	ErrMissingScore    = errors.New("enter all 4 scores before proceeding")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 5")
)

// ScoreError reports a rejected score of the player at Position.
type ScoreError struct {
	Position int
	Value    string
	Err      error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("player %d score %q: %s", e.Position+1, e.Value, e.Err)
}

func (e *ScoreError) Unwrap() error {
	return e.Err
}

// ParseScores validates raw Stableford points of the four players.
func ParseScores(raw [domain.PlayersCount]string) (domain.HoleScore, error) {
	var scores domain.HoleScore
	var err error
	for i := range raw {
		value := strings.TrimSpace(raw[i])
		if value == "" {
			err = errors.Join(err, &ScoreError{Position: i, Value: raw[i], Err: ErrMissingScore})
			continue
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < 0 || n > MaxPoints {
			err = errors.Join(err, &ScoreError{Position: i, Value: raw[i], Err: ErrScoreOutOfRange})
			continue
		}
		scores[i] = n
	}
	if err != nil {
		return domain.HoleScore{}, err
	}
	return scores, nil
}
