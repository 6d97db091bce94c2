package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table. The sku column
// carries a UNIQUE index; inserts violating it fail with AlreadyExists.
type Data struct {
	ProductID        string
	SKU              string
	Name             string
	Brand            string
	Category         string
	PriceNumerator   int64
	PriceDenominator int64
	ReleaseDate      time.Time
	StockQuantity    int64
	ImageURL         spanner.NullString
	IsAvailable      bool
	CreatedAt        time.Time
	UpdatedAt        spanner.NullTime
}
