package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
)

// ProductRepository defines the persistence port for product intake.
// The store is the final arbiter of SKU uniqueness: Insert must fail with
// domain.ErrDuplicateSKU when a concurrent creation won the race, regardless
// of what earlier lookups reported.
type ProductRepository interface {
	// FindBySKU reports whether a product with the given SKU exists.
	FindBySKU(ctx context.Context, sku string) (bool, error)

	// FindByNameAndBrand reports whether a product with the given
	// name/brand combination exists.
	FindByNameAndBrand(ctx context.Context, name, brand string) (bool, error)

	// CountCreatedOn counts products created on the given UTC calendar date.
	CountCreatedOn(ctx context.Context, date time.Time) (int64, error)

	// Insert persists a new product. Returns domain.ErrDuplicateSKU when
	// the SKU uniqueness constraint is violated.
	Insert(ctx context.Context, product *domain.Product) error

	// Exists checks if a product with the given id exists.
	Exists(ctx context.Context, productID string) (bool, error)
}
