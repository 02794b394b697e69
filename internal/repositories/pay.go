package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/utils"
)

// ownedTransaction:
//
// * `comparable` lets us use `==` against the zero value of T
// * OwnerUserID exposes the user the row belongs to
type ownedTransaction interface {
	comparable
	OwnerUserID() uuid.UUID
}

// markPaid runs the update-then-ownership-check pay flow inside a
// single storage transaction. The UPDATE must RETURN the full row so
// the ownership check sees the persisted user_id; if the caller does
// not own the row the whole transaction is rolled back and the status
// is left untouched.
func markPaid[T ownedTransaction](
	ctx context.Context,
	db DB,
	updateSQL string,
	scan func(pgx.Row) (T, error),
	id uuid.UUID,
	callerID uuid.UUID,
) (T, error) {
	var zero T

	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, err
	}

	row := tx.QueryRow(ctx, updateSQL, id)
	t, err := scan(row)
	if err != nil {
		_ = tx.Rollback(ctx)
		return zero, err
	}
	if t == zero {
		_ = tx.Rollback(ctx)
		return zero, pgx.ErrNoRows
	}

	if t.OwnerUserID() != callerID {
		_ = tx.Rollback(ctx)
		return zero, utils.ErrForbidden
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return t, nil
}
