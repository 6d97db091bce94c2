package projection

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

var projNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func newProjector() *Projector {
	return NewProjector(clock.NewMockClock(projNow))
}

func buildProduct(t *testing.T, mutate func(*domain.CreationRequest)) *domain.Product {
	t.Helper()
	price, err := domain.NewMoney(1500, 1)
	require.NoError(t, err)
	req := &domain.CreationRequest{
		Name:          "Smart Tech Laptop",
		Brand:         "Mega Tech",
		SKU:           "LAP-12345",
		Category:      domain.CategoryElectronics,
		Price:         price,
		ReleaseDate:   projNow.AddDate(0, -2, 0),
		StockQuantity: 3,
	}
	if mutate != nil {
		mutate(req)
	}
	return domain.NewProduct("prod-1", req, projNow)
}

func TestProjector_Project(t *testing.T) {
	view := newProjector().Project(buildProduct(t, nil))

	assert.Equal(t, "prod-1", view.ID)
	assert.Equal(t, "Electronics & Technology", view.CategoryDisplayName)
	assert.Equal(t, "MT", view.BrandInitials)
	assert.Equal(t, "Limited Stock", view.AvailabilityStatus)
	assert.InDelta(t, 1500.0, view.Price, 0.001)
	assert.True(t, strings.HasPrefix(view.FormattedPrice, "$"), view.FormattedPrice)
	assert.Contains(t, view.FormattedPrice, "1,500.00")
}

func TestProjector_HomeDiscount(t *testing.T) {
	imageURL := "https://cdn.example.com/lamp.jpg"
	product := buildProduct(t, func(r *domain.CreationRequest) {
		r.Name = "Ceramic Table Lamp"
		r.Category = domain.CategoryHome
		r.Price, _ = domain.NewMoney(9999, 100) // $99.99
		r.ImageURL = &imageURL
	})

	view := newProjector().Project(product)

	// 99.99 * 0.9 = 89.991, rounded to cents.
	assert.InDelta(t, 89.99, view.Price, 0.0001)
	assert.Contains(t, view.FormattedPrice, "89.99")
	assert.Nil(t, view.ImageURL, "home category suppresses the image URL")
}

func TestProjector_NonHomeKeepsImageURL(t *testing.T) {
	imageURL := "https://cdn.example.com/laptop.jpg"
	product := buildProduct(t, func(r *domain.CreationRequest) {
		r.ImageURL = &imageURL
	})

	view := newProjector().Project(product)
	require.NotNil(t, view.ImageURL)
	assert.Equal(t, imageURL, *view.ImageURL)
}

func TestProjector_ProductAge(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"released ten days ago", 10, "New Release"},
		{"just under a month boundary", 29, "New Release"},
		{"released 45 days ago", 45, "1 month old"},
		{"released 75 days ago", 75, "2 months old"},
		{"released 400 days ago", 400, "1 year old"},
		{"exactly five years", 1825, "Classic"},
		{"released 2000 days ago", 2000, "5 years old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := buildProduct(t, func(r *domain.CreationRequest) {
				r.ReleaseDate = projNow.AddDate(0, 0, -tt.days)
			})
			view := newProjector().Project(product)
			assert.Equal(t, tt.want, view.ProductAge)
		})
	}
}

func TestBrandInitials(t *testing.T) {
	tests := []struct {
		brand string
		want  string
	}{
		{"Mega Tech", "MT"},
		{"Sony", "S"},
		{"acme home goods", "AG"},
		{"", "?"},
		{"   ", "?"},
	}

	for _, tt := range tests {
		t.Run("brand "+tt.brand, func(t *testing.T) {
			assert.Equal(t, tt.want, brandInitials(tt.brand))
		})
	}
}

func TestAvailabilityStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int64
		want  string
	}{
		{"no stock", 0, "Out of Stock"},
		{"single unit", 1, "Last Item"},
		{"five units", 5, "Limited Stock"},
		{"six units", 6, "In Stock"},
		{"plenty", 500, "In Stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := buildProduct(t, func(r *domain.CreationRequest) {
				r.StockQuantity = tt.stock
			})
			assert.Equal(t, tt.want, availabilityStatus(product))
		})
	}
}

// Availability was derived before stock was zeroed out, so the stock check
// branch is reachable only through reconstruction of inconsistent rows.
func TestAvailabilityStatus_InconsistentRow(t *testing.T) {
	price, _ := domain.NewMoney(1500, 1)
	product := domain.ReconstructProduct(
		"prod-x", "Smart Tech Laptop", "Mega Tech", "LAP-12345",
		domain.CategoryElectronics, price,
		projNow.AddDate(0, -2, 0), 0, nil, true, projNow, nil,
	)
	assert.Equal(t, "Unavailable", availabilityStatus(product))
}
