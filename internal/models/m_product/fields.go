package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID        = "product_id"
	SKU              = "sku"
	Name             = "name"
	Brand            = "brand"
	Category         = "category"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	ReleaseDate      = "release_date"
	StockQuantity    = "stock_quantity"
	ImageURL         = "image_url"
	IsAvailable      = "is_available"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)
