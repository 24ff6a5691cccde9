package product

import (
	"context"
)

// Repository is the persistence contract for products and their children.
// Products resolve to rows by external id; variants and images upsert by
// their own external id, options by (product_id, name).
type Repository interface {
	FindByExternalID(ctx context.Context, externalID int64) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p *Product) (int, error)
	Update(ctx context.Context, p *Product) error
	DeleteByExternalID(ctx context.Context, externalID int64) error
	Search(ctx context.Context, query string) ([]Product, error)

	UpsertVariant(ctx context.Context, v *Variant) error
	UpsertImage(ctx context.Context, img *Image) error
	UpsertOption(ctx context.Context, opt *Option) error
}
