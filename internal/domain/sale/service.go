package sale

import (
	"context"
)

// SaleService tracks partial-payment deals and their commissions
type SaleService interface {
	// CreateSale opens a deal and immediately credits its full value toward
	// the agent's sales total for the current shift
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)

	// AddPayment collects a payment against a partial sale, completing it
	// and paying commission when the deal value is fully collected
	AddPayment(ctx context.Context, req AddPaymentRequest) (SaleResponse, error)

	// GetSale retrieves a single sale by ID
	GetSale(ctx context.Context, id string) (SaleResponse, error)

	// ListSales lists sales with filters and pagination
	ListSales(ctx context.Context, filter SaleFilter) (ListSaleResponse, error)

	// GetTargetStatus reports whether the agent's cumulative sales for a
	// shift have hit their target (the golden ticket). Defaults to the
	// current shift when no date is given
	GetTargetStatus(ctx context.Context, req TargetStatusRequest) (TargetStatusResponse, error)
}
