package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product. It uses a
// plain insert so that duplicate rows fail instead of being overwritten.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ProductID,
			SKU,
			Name,
			Brand,
			Category,
			PriceNumerator,
			PriceDenominator,
			ReleaseDate,
			StockQuantity,
			ImageURL,
			IsAvailable,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.SKU,
			data.Name,
			data.Brand,
			data.Category,
			data.PriceNumerator,
			data.PriceDenominator,
			data.ReleaseDate,
			data.StockQuantity,
			data.ImageURL,
			data.IsAvailable,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product (test cleanup).
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
