package sale

import "context"

type SaleRepository interface {
	Create(ctx context.Context, newSale Sale) (Sale, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	// GetByIDForUpdate locks the sale row for the current transaction so
	// concurrent payments are serialized.
	GetByIDForUpdate(ctx context.Context, id string) (Sale, error)
	Update(ctx context.Context, updated Sale) error
	List(ctx context.Context, filter SaleFilter) ([]Sale, int, error)
}
