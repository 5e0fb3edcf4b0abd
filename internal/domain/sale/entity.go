package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID               string
	EmployeeID       string
	CustomerName     string
	TotalDealValue   decimal.Decimal
	AmountCollected  decimal.Decimal
	Status           Status
	CommissionPaid   bool
	CommissionAmount decimal.Decimal
	AttributedDate   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusPartial   Status = "partial"
	StatusCompleted Status = "completed"
)

var StatusValues = []string{
	string(StatusPartial),
	string(StatusCompleted),
}

// ApplyPayment collects a payment against the deal. Payments never overshoot:
// the applied amount is capped at the remaining balance. When collection
// reaches the deal value the sale flips to completed and the commission is
// computed, exactly once, on that transition. Completed sales reject any
// further payment.
//
// Callers must serialize concurrent payments per sale (row lock or
// equivalent) so the completed transition happens at most once.
func (s *Sale) ApplyPayment(amount, commissionRate decimal.Decimal) (decimal.Decimal, bool, error) {
	if s.Status == StatusCompleted {
		return decimal.Zero, false, ErrSaleAlreadyCompleted
	}

	applied := amount
	if remaining := s.TotalDealValue.Sub(s.AmountCollected); applied.GreaterThan(remaining) {
		applied = remaining
	}
	s.AmountCollected = s.AmountCollected.Add(applied)

	if s.AmountCollected.GreaterThanOrEqual(s.TotalDealValue) {
		s.Status = StatusCompleted
		s.CommissionAmount = s.TotalDealValue.Mul(commissionRate).Round(2)
		s.CommissionPaid = true
		return applied, true, nil
	}

	return applied, false, nil
}
