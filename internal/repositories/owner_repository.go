package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
)

type OwnerRepository interface {
	List(ctx context.Context) ([]*models.Owner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Owner, error)
}

type ownerRepo struct {
	db DB
}

func NewOwnerRepository(db DB) OwnerRepository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) List(ctx context.Context) ([]*models.Owner, error) {
	rows, err := r.db.Query(ctx, baseSelectOwner()+" ORDER BY owner_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ownerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, baseSelectOwner()+" WHERE owner_id=$1", id)
	return scanOwner(row)
}

func baseSelectOwner() string {
	return `
        SELECT owner_id, owner_name, address, email
        FROM property_owners
    `
}

func scanOwner(row pgx.Row) (*models.Owner, error) {
	var o models.Owner
	err := row.Scan(&o.ID, &o.Name, &o.Address, &o.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
