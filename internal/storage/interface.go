package storage

import (
	"context"
	"errors"

	"github.com/goserg/vegasgolf/internal/domain"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("round not found")

type RoundStorage interface {
	SaveRound(ctx context.Context, round domain.Round) error
	GetRound(ctx context.Context, id uuid.UUID) (domain.Round, error)
	ListRounds(ctx context.Context) ([]domain.Round, error)
}
