package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

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
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translateError maps driver errors onto the application sentinels.
// what names the record for messages, e.g. "counterparty cp-1".
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return apperrors.NewValidationError("reference", fmt.Sprintf("%s refers to a missing record (%s)", what, pgErr.ConstraintName))
		case pgCheckViolation:
			return apperrors.NewValidationError("record", fmt.Sprintf("%s violates %s", what, pgErr.ConstraintName))
		}
	}
	return apperrors.NewAppError(500, "database error on "+what, err)
}

// execOne runs a statement that must touch exactly one row.
func (r *BaseRepository) execOne(ctx context.Context, what, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(what)
	}
	return nil
}

// findOne queries a single row into model M and converts it.
func findOne[M any, D any](ctx context.Context, pool *pgxpool.Pool, what string, toDomain func(M) D, query string, args ...any) (*D, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translateError(err, what)
	}
	d := toDomain(m)
	return &d, nil
}

// findMany queries rows into models M and converts them. The result is never nil.
func findMany[M any, D any](ctx context.Context, pool *pgxpool.Pool, what string, toDomain func([]M) []D, query string, args ...any) ([]D, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, what)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translateError(err, what)
	}
	return toDomain(ms), nil
}

// activeClause returns the SQL filter for a visibility, prefixed with AND.
func activeClause(vis domain.Visibility, column string) string {
	if vis == domain.IncludeInactive {
		return ""
	}
	return " AND " + column + " = TRUE"
}
