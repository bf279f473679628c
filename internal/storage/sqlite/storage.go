package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goserg/vegasgolf/gen/table"
	"github.com/goserg/vegasgolf/internal/domain"
	sqlite3 "github.com/goserg/vegasgolf/internal/migrate"
	"github.com/goserg/vegasgolf/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.RoundStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "round-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpRoundsDB(db)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("round storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveRound(ctx context.Context, round domain.Round) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dbRound := convertRoundFromDomain(round)
	_, err = table.Rounds.
		INSERT(table.Rounds.AllColumns).
		MODEL(dbRound).
		ON_CONFLICT(table.Rounds.ID).
		DO_UPDATE(sqlite.SET(
			table.Rounds.CurrentHole.SET(table.Rounds.EXCLUDED.CurrentHole),
			table.Rounds.TeamA.SET(table.Rounds.EXCLUDED.TeamA),
			table.Rounds.TeamB.SET(table.Rounds.EXCLUDED.TeamB),
			table.Rounds.Finished.SET(table.Rounds.EXCLUDED.Finished),
			table.Rounds.FinishedAt.SET(table.Rounds.EXCLUDED.FinishedAt),
		)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.HoleResults.
		DELETE().
		WHERE(table.HoleResults.RoundID.EQ(sqlite.String(dbRound.ID))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	results := convertResultsFromDomain(dbRound.ID, round.State.Results)
	if len(results) > 0 {
		_, err = table.HoleResults.
			INSERT(table.HoleResults.AllColumns).
			MODELS(results).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	err = tx.Commit()
	if err != nil {
		return err
	}
	s.log.WithField("round_id", dbRound.ID).Debug("round saved")
	return nil
}

func selectRounds() sqlite.SelectStatement {
	return table.Rounds.
		SELECT(table.Rounds.AllColumns, table.HoleResults.AllColumns).
		FROM(table.Rounds.
			LEFT_JOIN(table.HoleResults, table.HoleResults.RoundID.EQ(table.Rounds.ID)),
		)
}

func (s *Storage) GetRound(ctx context.Context, id uuid.UUID) (domain.Round, error) {
	var dest roundModel
	err := selectRounds().
		WHERE(table.Rounds.ID.EQ(sqlite.String(id.String()))).
		ORDER_BY(table.HoleResults.Seq.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Round{}, storage.ErrNotFound
		}
		return domain.Round{}, err
	}
	return convertRoundToDomain(dest)
}

func (s *Storage) ListRounds(ctx context.Context) ([]domain.Round, error) {
	var dest []roundModel
	err := selectRounds().
		ORDER_BY(table.Rounds.CreatedAt.DESC(), table.HoleResults.Seq.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	rounds := make([]domain.Round, 0, len(dest))
	for i := range dest {
		round, err := convertRoundToDomain(dest[i])
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}
