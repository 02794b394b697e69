package models

import "github.com/google/uuid"

// Transaction payment lifecycle: Unpaid -> Paid (terminal) or
// Unpaid -> Cancelled.
const (
	TransactionStatusUnpaid    = "Unpaid"
	TransactionStatusPaid      = "Paid"
	TransactionStatusCancelled = "Cancelled"
)

// RentTransaction is a booking against a rent listing. A property may
// hold at most one transaction that is simultaneously non-Cancelled
// and not yet past its end date.
type RentTransaction struct {
	ID             uuid.UUID `json:"rent_transaction_id"`
	RentPropertyID uuid.UUID `json:"rent_property_id"`
	UserID         uuid.UUID `json:"user_id"`
	TotalPayment   int64     `json:"total_payment"`
	StartDate      Date      `json:"start_date"`
	EndDate        Date      `json:"end_date"`
	Status         string    `json:"status"`
}

// OwnerUserID identifies the user the transaction belongs to, for
// ownership-gated mutation.
func (t *RentTransaction) OwnerUserID() uuid.UUID { return t.UserID }

// RentTransactionDetail is the read projection with the listing
// denormalized into the response.
type RentTransactionDetail struct {
	ID           uuid.UUID    `json:"rent_transaction_id"`
	UserID       uuid.UUID    `json:"user_id"`
	TotalPayment int64        `json:"total_payment"`
	StartDate    Date         `json:"start_date"`
	EndDate      Date         `json:"end_date"`
	Status       string       `json:"status"`
	RentProperty RentProperty `json:"rent_property"`
}

// SaleTransaction is a purchase agreement against a sale listing. A
// property may hold at most one non-Cancelled sale transaction, with
// no time bound.
type SaleTransaction struct {
	ID                  uuid.UUID `json:"sale_transaction_id"`
	SalePropertyID      uuid.UUID `json:"sale_property_id"`
	UserID              uuid.UUID `json:"user_id"`
	DownPayment         int64     `json:"down_payment"`
	InstallmentDuration int32     `json:"installment_duration"`
	MonthlyMortgage     int64     `json:"monthly_mortgage"`
	SaleDate            Date      `json:"sale_date"`
	Status              string    `json:"status"`
}

func (t *SaleTransaction) OwnerUserID() uuid.UUID { return t.UserID }

type SaleTransactionDetail struct {
	ID                  uuid.UUID    `json:"sale_transaction_id"`
	UserID              uuid.UUID    `json:"user_id"`
	DownPayment         int64        `json:"down_payment"`
	InstallmentDuration int32        `json:"installment_duration"`
	MonthlyMortgage     int64        `json:"monthly_mortgage"`
	SaleDate            Date         `json:"sale_date"`
	Status              string       `json:"status"`
	SaleProperty        SaleProperty `json:"sale_property"`
}
