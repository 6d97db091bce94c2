package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(stock int64) *CreationRequest {
	price, _ := NewMoney(1500, 1)
	return &CreationRequest{
		Name:          "Smart Tech Laptop",
		Brand:         "Mega Tech",
		SKU:           "LAP 123 45",
		Category:      CategoryElectronics,
		Price:         price,
		ReleaseDate:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
		StockQuantity: stock,
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	t.Run("derives availability from stock at creation", func(t *testing.T) {
		p := NewProduct("id-1", testRequest(3), now)
		assert.True(t, p.IsAvailable())

		empty := NewProduct("id-2", testRequest(0), now)
		assert.False(t, empty.IsAvailable())
	})

	t.Run("stores the normalized SKU", func(t *testing.T) {
		p := NewProduct("id-1", testRequest(3), now)
		assert.Equal(t, "LAP12345", p.SKU())
	})

	t.Run("stamps creation time and leaves updated time unset", func(t *testing.T) {
		p := NewProduct("id-1", testRequest(3), now)
		assert.Equal(t, now, p.CreatedAt())
		assert.Nil(t, p.UpdatedAt())
	})

	t.Run("copies the price", func(t *testing.T) {
		req := testRequest(3)
		p := NewProduct("id-1", req, now)
		require.True(t, p.Price().Equals(req.Price))
	})
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryElectronics, ParseCategory(" Electronics "))
	assert.True(t, ParseCategory("HOME").Valid())
	assert.False(t, ParseCategory("furniture").Valid())
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Electronics & Technology", CategoryElectronics.DisplayName())
	assert.Equal(t, "Clothing & Fashion", CategoryClothing.DisplayName())
	assert.Equal(t, "Books & Media", CategoryBooks.DisplayName())
	assert.Equal(t, "Home & Garden", CategoryHome.DisplayName())
	assert.Equal(t, "Uncategorized", Category("other").DisplayName())
}
