package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
)

// rentAvailabilityPredicate hides listings claimed by an active
// booking. A rental becomes available again once its transaction is
// cancelled or past its end date.
const rentAvailabilityPredicate = `
        rent_property_id NOT IN (
            SELECT rent_property_id FROM rent_transactions
            WHERE status != 'Cancelled' AND end_date > CURRENT_DATE
        )`

type RentPropertyRepository interface {
	Create(ctx context.Context, p *models.RentProperty) error
	ListAvailable(ctx context.Context) ([]*models.RentProperty, error)
	GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.RentProperty, error)
}

type rentPropertyRepo struct {
	db DB
}

func NewRentPropertyRepository(db DB) RentPropertyRepository {
	return &rentPropertyRepo{db: db}
}

func (r *rentPropertyRepo) Create(ctx context.Context, p *models.RentProperty) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rent_properties (
            rent_property_id, title, description, address, owner_id,
            lt, lb, bedroom, bathroom, monthly_rent, picture_url, status
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `,
		p.ID,
		p.Title,
		p.Description,
		p.Address,
		p.OwnerID,
		p.LandSize,
		p.BuildingSize,
		p.Bedroom,
		p.Bathroom,
		p.MonthlyRent,
		p.PictureURL,
		p.Status,
	)
	return err
}

func (r *rentPropertyRepo) ListAvailable(ctx context.Context) ([]*models.RentProperty, error) {
	rows, err := r.db.Query(ctx, baseSelectRentProperty()+" WHERE "+rentAvailabilityPredicate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RentProperty
	for rows.Next() {
		p, err := scanRentProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *rentPropertyRepo) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.RentProperty, error) {
	row := r.db.QueryRow(ctx,
		baseSelectRentProperty()+" WHERE rent_property_id=$1 AND "+rentAvailabilityPredicate, id)
	return scanRentProperty(row)
}

func baseSelectRentProperty() string {
	return `
        SELECT
            rent_property_id, title, description, address, owner_id,
            lt, lb, bedroom, bathroom, monthly_rent, picture_url, status
        FROM rent_properties
    `
}

func scanRentProperty(row pgx.Row) (*models.RentProperty, error) {
	var p models.RentProperty
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Address,
		&p.OwnerID,
		&p.LandSize,
		&p.BuildingSize,
		&p.Bedroom,
		&p.Bathroom,
		&p.MonthlyRent,
		&p.PictureURL,
		&p.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
