package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// MemoryRepo keeps products in process memory behind a mutex. It backs
// tests and local runs. Insert checks and claims the SKU under a single
// lock, playing the final-arbiter role the UNIQUE index plays in Spanner:
// under concurrent identical-SKU inserts exactly one succeeds.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Product
	bySKU map[string]string
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:  make(map[string]*domain.Product),
		bySKU: make(map[string]string),
	}
}

// FindBySKU reports whether a product with the given SKU exists.
func (r *MemoryRepo) FindBySKU(_ context.Context, sku string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bySKU[sku]
	return ok, nil
}

// FindByNameAndBrand reports whether a product with the name/brand pair
// exists. Matching is case-insensitive, mirroring the collation the
// Spanner schema uses for these columns.
func (r *MemoryRepo) FindByNameAndBrand(_ context.Context, name, brand string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.byID {
		if strings.EqualFold(p.Name(), name) && strings.EqualFold(p.Brand(), brand) {
			return true, nil
		}
	}
	return false, nil
}

// CountCreatedOn counts products created on the given UTC calendar date.
func (r *MemoryRepo) CountCreatedOn(_ context.Context, date time.Time) (int64, error) {
	day := clock.DateUTC(date)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, p := range r.byID {
		if clock.DateUTC(p.CreatedAt()).Equal(day) {
			count++
		}
	}
	return count, nil
}

// Insert persists a new product, failing with domain.ErrDuplicateSKU when
// the SKU is already taken.
func (r *MemoryRepo) Insert(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySKU[product.SKU()]; ok {
		return domain.ErrDuplicateSKU
	}
	r.byID[product.ID()] = product
	r.bySKU[product.SKU()] = product.ID()
	return nil
}

// Exists checks if a product with the given id exists.
func (r *MemoryRepo) Exists(_ context.Context, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[productID]
	return ok, nil
}

// Len returns the number of stored products.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

var _ contracts.ProductRepository = (*MemoryRepo)(nil)
