package repository

import (
	"context"
	"errors"

	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// collect scans every row into T by db tag. Selected columns must match T's fields.
func collect[T any](ctx context.Context, pool *pgxpool.Pool, op, query string, args ...any) ([]*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return items, nil
}

// collectOne maps an empty result to notFound.
func collectOne[T any](ctx context.Context, pool *pgxpool.Pool, notFound error, op, query string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return item, nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, pool *pgxpool.Pool, notFound error, op, query string, args ...any) error {
	result, err := pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewPersistenceError(op, err)
	}
	if result.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
