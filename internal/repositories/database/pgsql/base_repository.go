package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// casExec runs a versioned UPDATE. No affected row means another writer got
// there first.
func casExec(ctx context.Context, q querier, what string, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, what+" was modified concurrently", apperrors.ErrStaleVersion)
	}
	return nil
}

// translatePgError maps constraint violations to application errors.
func translatePgError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.NewAppError(409, what+" conflicts with an existing record ("+pgErr.ConstraintName+")", apperrors.ErrConflict)
		case "23503": // foreign_key_violation
			return apperrors.NewValidationFailedError(what + " references a record that does not exist (" + pgErr.ConstraintName + ")")
		case "23514": // check_violation
			return apperrors.NewValidationFailedError(what + " violates " + pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}
