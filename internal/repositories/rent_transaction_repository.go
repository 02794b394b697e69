package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
)

type RentTransactionRepository interface {
	Create(ctx context.Context, t *models.RentTransaction) error
	GetDetailByID(ctx context.Context, id uuid.UUID) (*models.RentTransactionDetail, error)
	ListDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.RentTransactionDetail, error)

	// MarkPaid flips the transaction to Paid inside a storage
	// transaction, rolling back when callerID does not own the row.
	// Returns utils.ErrForbidden on ownership mismatch and
	// pgx.ErrNoRows when the id does not exist.
	MarkPaid(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.RentTransaction, error)
}

type rentTransactionRepo struct {
	db DB
}

func NewRentTransactionRepository(db DB) RentTransactionRepository {
	return &rentTransactionRepo{db: db}
}

func (r *rentTransactionRepo) Create(ctx context.Context, t *models.RentTransaction) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rent_transactions (
            rent_transaction_id, rent_property_id, user_id,
            total_payment, start_date, end_date, status
        ) VALUES ($1,$2,$3,$4,$5,$6,$7)
    `,
		t.ID,
		t.RentPropertyID,
		t.UserID,
		t.TotalPayment,
		t.StartDate,
		t.EndDate,
		t.Status,
	)
	return err
}

func (r *rentTransactionRepo) GetDetailByID(ctx context.Context, id uuid.UUID) (*models.RentTransactionDetail, error) {
	row := r.db.QueryRow(ctx, baseSelectRentDetail()+" WHERE rt.rent_transaction_id=$1", id)
	return scanRentDetail(row)
}

func (r *rentTransactionRepo) ListDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.RentTransactionDetail, error) {
	rows, err := r.db.Query(ctx, baseSelectRentDetail()+" WHERE rt.user_id=$1 ORDER BY rt.start_date", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RentTransactionDetail
	for rows.Next() {
		d, err := scanRentDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *rentTransactionRepo) MarkPaid(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.RentTransaction, error) {
	return markPaid(ctx, r.db, `
        UPDATE rent_transactions SET status='Paid'
        WHERE rent_transaction_id=$1
        RETURNING rent_transaction_id, rent_property_id, user_id,
                  total_payment, start_date, end_date, status
    `, scanRentTransaction, id, callerID)
}

func baseSelectRentDetail() string {
	return `
        SELECT
            rt.rent_transaction_id, rt.user_id, rt.total_payment,
            rt.start_date, rt.end_date, rt.status,
            rp.rent_property_id, rp.title, rp.description, rp.address,
            rp.owner_id, rp.lt, rp.lb, rp.bedroom, rp.bathroom,
            rp.monthly_rent, rp.picture_url, rp.status
        FROM rent_transactions rt
        JOIN rent_properties rp ON rt.rent_property_id = rp.rent_property_id
    `
}

func scanRentTransaction(row pgx.Row) (*models.RentTransaction, error) {
	var t models.RentTransaction
	err := row.Scan(
		&t.ID,
		&t.RentPropertyID,
		&t.UserID,
		&t.TotalPayment,
		&t.StartDate,
		&t.EndDate,
		&t.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanRentDetail(row pgx.Row) (*models.RentTransactionDetail, error) {
	var d models.RentTransactionDetail
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.TotalPayment,
		&d.StartDate,
		&d.EndDate,
		&d.Status,
		&d.RentProperty.ID,
		&d.RentProperty.Title,
		&d.RentProperty.Description,
		&d.RentProperty.Address,
		&d.RentProperty.OwnerID,
		&d.RentProperty.LandSize,
		&d.RentProperty.BuildingSize,
		&d.RentProperty.Bedroom,
		&d.RentProperty.Bathroom,
		&d.RentProperty.MonthlyRent,
		&d.RentProperty.PictureURL,
		&d.RentProperty.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
