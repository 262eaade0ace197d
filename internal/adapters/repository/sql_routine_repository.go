package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const routineDocumentsSchema = `
	CREATE TABLE IF NOT EXISTS routine_documents (
		user_id    TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

var _ domain.RoutineRepository = (*SQLRoutineRepository)(nil)

// SQLRoutineRepository stores each user's document as one row. The queries are
// portable between postgres and sqlite.
type SQLRoutineRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSQLRoutineRepository(db *sqlx.DB, logger *zap.Logger) *SQLRoutineRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLRoutineRepository{
		db:     db,
		logger: logger.Named("routine_sql"),
	}
}

func (r *SQLRoutineRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, routineDocumentsSchema); err != nil {
		return fmt.Errorf("%w: create routine_documents: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *SQLRoutineRepository) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	var document string
	query := r.db.Rebind(`SELECT document FROM routine_documents WHERE user_id = ?`)

	err := r.db.GetContext(ctx, &document, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewRoutineSet(), nil
		}
		return nil, fmt.Errorf("%w: load routines: %v", domain.ErrStorage, err)
	}

	return decodeDocument([]byte(document), r.logger.With(zap.String("user_id", userID))), nil
}

func (r *SQLRoutineRepository) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	data, err := domain.EncodeRoutines(routines)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`
		INSERT INTO routine_documents (user_id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET document = excluded.document,
		    updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, userID, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: save routines: %v", domain.ErrStorage, err)
	}
	return nil
}

// Ping is used by the health endpoint.
func (r *SQLRoutineRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
