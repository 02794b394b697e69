package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
)

type SaleTransactionRepository interface {
	Create(ctx context.Context, t *models.SaleTransaction) error
	GetDetailByID(ctx context.Context, id uuid.UUID) (*models.SaleTransactionDetail, error)
	ListDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SaleTransactionDetail, error)

	// MarkPaid mirrors RentTransactionRepository.MarkPaid.
	MarkPaid(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.SaleTransaction, error)
}

type saleTransactionRepo struct {
	db DB
}

func NewSaleTransactionRepository(db DB) SaleTransactionRepository {
	return &saleTransactionRepo{db: db}
}

func (r *saleTransactionRepo) Create(ctx context.Context, t *models.SaleTransaction) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO sale_transactions (
            sale_transaction_id, sale_property_id, user_id,
            down_payment, installment_duration, monthly_mortgage,
            sale_date, status
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `,
		t.ID,
		t.SalePropertyID,
		t.UserID,
		t.DownPayment,
		t.InstallmentDuration,
		t.MonthlyMortgage,
		t.SaleDate,
		t.Status,
	)
	return err
}

func (r *saleTransactionRepo) GetDetailByID(ctx context.Context, id uuid.UUID) (*models.SaleTransactionDetail, error) {
	row := r.db.QueryRow(ctx, baseSelectSaleDetail()+" WHERE st.sale_transaction_id=$1", id)
	return scanSaleDetail(row)
}

func (r *saleTransactionRepo) ListDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SaleTransactionDetail, error) {
	rows, err := r.db.Query(ctx, baseSelectSaleDetail()+" WHERE st.user_id=$1 ORDER BY st.sale_date", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SaleTransactionDetail
	for rows.Next() {
		d, err := scanSaleDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *saleTransactionRepo) MarkPaid(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.SaleTransaction, error) {
	return markPaid(ctx, r.db, `
        UPDATE sale_transactions SET status='Paid'
        WHERE sale_transaction_id=$1
        RETURNING sale_transaction_id, sale_property_id, user_id,
                  down_payment, installment_duration, monthly_mortgage,
                  sale_date, status
    `, scanSaleTransaction, id, callerID)
}

func baseSelectSaleDetail() string {
	return `
        SELECT
            st.sale_transaction_id, st.user_id, st.down_payment,
            st.installment_duration, st.monthly_mortgage, st.sale_date,
            st.status,
            sp.sale_property_id, sp.title, sp.description, sp.address,
            sp.owner_id, sp.lt, sp.lb, sp.bedroom, sp.bathroom,
            sp.property_price, sp.picture_url, sp.status
        FROM sale_transactions st
        JOIN sale_properties sp ON st.sale_property_id = sp.sale_property_id
    `
}

func scanSaleTransaction(row pgx.Row) (*models.SaleTransaction, error) {
	var t models.SaleTransaction
	err := row.Scan(
		&t.ID,
		&t.SalePropertyID,
		&t.UserID,
		&t.DownPayment,
		&t.InstallmentDuration,
		&t.MonthlyMortgage,
		&t.SaleDate,
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

func scanSaleDetail(row pgx.Row) (*models.SaleTransactionDetail, error) {
	var d models.SaleTransactionDetail
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DownPayment,
		&d.InstallmentDuration,
		&d.MonthlyMortgage,
		&d.SaleDate,
		&d.Status,
		&d.SaleProperty.ID,
		&d.SaleProperty.Title,
		&d.SaleProperty.Description,
		&d.SaleProperty.Address,
		&d.SaleProperty.OwnerID,
		&d.SaleProperty.LandSize,
		&d.SaleProperty.BuildingSize,
		&d.SaleProperty.Bedroom,
		&d.SaleProperty.Bathroom,
		&d.SaleProperty.PropertyPrice,
		&d.SaleProperty.PictureURL,
		&d.SaleProperty.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
