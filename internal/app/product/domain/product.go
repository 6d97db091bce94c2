package domain

import (
	"strings"
	"time"
)

// CreationRequest carries the fields of one create-product call.
// It is transient and lives only for the duration of that call.
type CreationRequest struct {
	Name          string
	Brand         string
	SKU           string
	Category      Category
	Price         *Money
	ReleaseDate   time.Time
	StockQuantity int64
	ImageURL      *string
}

// NormalizedSKU returns the SKU with all spaces removed. Pattern and
// uniqueness checks operate on the normalized form, and the normalized
// form is what gets persisted.
func (r *CreationRequest) NormalizedSKU() string {
	return strings.ReplaceAll(r.SKU, " ", "")
}

// Product is the persisted product entity. It is immutable after creation:
// there is no update path, so availability reflects the stock level at the
// moment of creation permanently.
type Product struct {
	id            string
	name          string
	brand         string
	sku           string
	category      Category
	price         *Money
	releaseDate   time.Time
	stockQuantity int64
	imageURL      *string
	isAvailable   bool
	createdAt     time.Time
	updatedAt     *time.Time
}

// NewProduct builds the entity persisted for an accepted creation request.
// The SKU is stored normalized and IsAvailable is derived from the stock
// quantity at creation time.
func NewProduct(id string, req *CreationRequest, now time.Time) *Product {
	return &Product{
		id:            id,
		name:          req.Name,
		brand:         req.Brand,
		sku:           req.NormalizedSKU(),
		category:      req.Category,
		price:         req.Price.Copy(),
		releaseDate:   req.ReleaseDate,
		stockQuantity: req.StockQuantity,
		imageURL:      req.ImageURL,
		isAvailable:   req.StockQuantity > 0,
		createdAt:     now,
	}
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(
	id, name, brand, sku string,
	category Category,
	price *Money,
	releaseDate time.Time,
	stockQuantity int64,
	imageURL *string,
	isAvailable bool,
	createdAt time.Time,
	updatedAt *time.Time,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		brand:         brand,
		sku:           sku,
		category:      category,
		price:         price,
		releaseDate:   releaseDate,
		stockQuantity: stockQuantity,
		imageURL:      imageURL,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters
func (p *Product) ID() string             { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Brand() string          { return p.brand }
func (p *Product) SKU() string            { return p.sku }
func (p *Product) Category() Category     { return p.category }
func (p *Product) Price() *Money          { return p.price.Copy() }
func (p *Product) ReleaseDate() time.Time { return p.releaseDate }
func (p *Product) StockQuantity() int64   { return p.stockQuantity }
func (p *Product) ImageURL() *string      { return p.imageURL }
func (p *Product) IsAvailable() bool      { return p.isAvailable }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() *time.Time  { return p.updatedAt }
