package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
)

// saleAvailabilityPredicate hides listings claimed by an active sale.
// Unlike rentals there is no time bound: a sold property stays
// unavailable unless the sale is cancelled.
const saleAvailabilityPredicate = `
        sale_property_id NOT IN (
            SELECT sale_property_id FROM sale_transactions
            WHERE status != 'Cancelled'
        )`

type SalePropertyRepository interface {
	Create(ctx context.Context, p *models.SaleProperty) error
	ListAvailable(ctx context.Context) ([]*models.SaleProperty, error)
	GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.SaleProperty, error)
}

type salePropertyRepo struct {
	db DB
}

func NewSalePropertyRepository(db DB) SalePropertyRepository {
	return &salePropertyRepo{db: db}
}

func (r *salePropertyRepo) Create(ctx context.Context, p *models.SaleProperty) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO sale_properties (
            sale_property_id, title, description, address, owner_id,
            lt, lb, bedroom, bathroom, property_price, picture_url, status
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
		p.PropertyPrice,
		p.PictureURL,
		p.Status,
	)
	return err
}

func (r *salePropertyRepo) ListAvailable(ctx context.Context) ([]*models.SaleProperty, error) {
	rows, err := r.db.Query(ctx, baseSelectSaleProperty()+" WHERE "+saleAvailabilityPredicate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SaleProperty
	for rows.Next() {
		p, err := scanSaleProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *salePropertyRepo) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.SaleProperty, error) {
	row := r.db.QueryRow(ctx,
		baseSelectSaleProperty()+" WHERE sale_property_id=$1 AND "+saleAvailabilityPredicate, id)
	return scanSaleProperty(row)
}

func baseSelectSaleProperty() string {
	return `
        SELECT
            sale_property_id, title, description, address, owner_id,
            lt, lb, bedroom, bathroom, property_price, picture_url, status
        FROM sale_properties
    `
}

func scanSaleProperty(row pgx.Row) (*models.SaleProperty, error) {
	var p models.SaleProperty
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
		&p.PropertyPrice,
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
