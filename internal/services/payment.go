package services

import (
	"math"

	"github.com/homeseek/backend/internal/models"
)

// PaymentTerms carries the client-supplied parts of a payment
// derivation. Rent bookings use the date range; sale agreements use
// the down payment and installment count. The listing's price figure
// is always read server-side, never trusted from the client.
type PaymentTerms struct {
	StartDate         models.Date
	EndDate           models.Date
	DownPayment       int64
	InstallmentMonths int32
}

// PaymentCalculator derives the amount owed on a transaction from the
// listing's price figure and the terms.
type PaymentCalculator interface {
	Amount(listingPrice int64, terms PaymentTerms) int64
}

// FlatPeriodCalculator charges the listing rate once per whole rental
// period. Integer division drops any partial-period remainder, so a
// 45-day booking at a 30-day period pays for one period only.
type FlatPeriodCalculator struct {
	PeriodDays int64
}

func NewFlatPeriodCalculator() FlatPeriodCalculator {
	return FlatPeriodCalculator{PeriodDays: 30}
}

func (c FlatPeriodCalculator) Amount(monthlyRate int64, terms PaymentTerms) int64 {
	days := terms.StartDate.DaysUntil(terms.EndDate)
	return monthlyRate * (days / c.PeriodDays)
}

// AmortizationCalculator computes the fixed-rate amortized monthly
// mortgage: principal * r * (1+r)^n / ((1+r)^n - 1), with
// r = AnnualRate/12 and n the installment count. The result is
// truncated to an integer currency unit.
type AmortizationCalculator struct {
	AnnualRate float64
}

func NewAmortizationCalculator() AmortizationCalculator {
	return AmortizationCalculator{AnnualRate: 0.06}
}

func (c AmortizationCalculator) Amount(listingPrice int64, terms PaymentTerms) int64 {
	principal := listingPrice - terms.DownPayment
	monthlyRate := c.AnnualRate / 12
	pow := math.Pow(1+monthlyRate, float64(terms.InstallmentMonths))
	return int64(float64(principal) * monthlyRate * pow / (pow - 1))
}
