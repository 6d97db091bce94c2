// Package testutil provides shared fixtures and fakes for tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/projection"
	"github.com/light-bringer/prodintake-service/internal/app/product/rules"
	"github.com/light-bringer/prodintake-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/prodintake-service/internal/pkg/cache"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// FixedNow is the reference instant used by deterministic tests.
var FixedNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

// NewClock returns a MockClock pinned to FixedNow.
func NewClock() *clock.MockClock {
	return clock.NewMockClock(FixedNow)
}

// ValidElectronicsRequest returns a creation request that passes every rule.
// Mutate the returned value to trigger specific failures.
func ValidElectronicsRequest() *create_product.Request {
	price, _ := domain.NewMoney(1500, 1)
	return &create_product.Request{
		Name:          "Smart Tech Laptop",
		Brand:         "Mega Tech",
		SKU:           "LAP-12345",
		Category:      "electronics",
		Price:         price,
		ReleaseDate:   FixedNow.AddDate(0, -2, 0),
		StockQuantity: 3,
	}
}

// ValidHomeRequest returns a valid home-category creation request.
func ValidHomeRequest() *create_product.Request {
	price, _ := domain.NewMoney(9999, 100) // $99.99
	imageURL := "https://cdn.example.com/lamp.jpg"
	return &create_product.Request{
		Name:          "Ceramic Table Lamp",
		Brand:         "Cozy Living",
		SKU:           "LAMP-00042",
		Category:      "home",
		Price:         price,
		ReleaseDate:   FixedNow.AddDate(-1, 0, 0),
		StockQuantity: 12,
		ImageURL:      &imageURL,
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CaptureObserver records metric emissions for assertions.
type CaptureObserver struct {
	mu      sync.Mutex
	records []contracts.CreationMetrics
}

func (c *CaptureObserver) ObserveCreation(_ context.Context, m contracts.CreationMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, m)
}

// Records returns a copy of the captured emissions.
func (c *CaptureObserver) Records() []contracts.CreationMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]contracts.CreationMetrics, len(c.records))
	copy(out, c.records)
	return out
}

// BuildInteractor wires a creation interactor over the given store with a
// fresh cache and the given clock and observer.
func BuildInteractor(repo contracts.ProductRepository, clk clock.Clock, observer contracts.CreationObserver) (*create_product.Interactor, *cache.Memory) {
	listingCache := cache.NewMemory()
	interactor := create_product.NewInteractor(
		rules.NewEngine(repo, clk),
		rules.NewPolicyEvaluator(repo, clk),
		repo,
		listingCache,
		projection.NewProjector(clk),
		observer,
		clk,
		DiscardLogger(),
	)
	return interactor, listingCache
}
