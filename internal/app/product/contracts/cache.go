package contracts

import "context"

// AllProductsKey is the cache key under which the aggregate product listing
// is stored. Successful creations evict it.
const AllProductsKey = "products:all"

// ListingCache is the port for the shared listing cache. Eviction is best
// effort: a failure is logged by the caller, never surfaced.
type ListingCache interface {
	Evict(ctx context.Context, key string) error
}
