package rules

import (
	"context"
	"fmt"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// DailyCreationCap limits how many products may be created per UTC day.
const DailyCreationCap = 500

var (
	strictExpensiveThreshold, _ = domain.NewMoney(500, 1)
)

// PolicyEvaluator gates whole requests after structural validation passes.
// A failed policy collapses to a single aggregate message for the caller;
// the specific reason is only logged.
type PolicyEvaluator struct {
	repo  contracts.ProductRepository
	clock clock.Clock
}

// NewPolicyEvaluator creates a PolicyEvaluator backed by the given store.
func NewPolicyEvaluator(repo contracts.ProductRepository, clk clock.Clock) *PolicyEvaluator {
	return &PolicyEvaluator{repo: repo, clock: clk}
}

// Evaluate applies all business policies to the request. It returns the
// internal reason for the first failed policy; the error return carries
// store failures only.
func (p *PolicyEvaluator) Evaluate(ctx context.Context, req *domain.CreationRequest) (bool, string, error) {
	count, err := p.repo.CountCreatedOn(ctx, clock.TodayUTC(p.clock))
	if err != nil {
		return false, "", fmt.Errorf("daily creation count lookup failed: %w", err)
	}
	if count >= DailyCreationCap {
		return false, fmt.Sprintf("daily creation cap of %d reached", DailyCreationCap), nil
	}

	// Duplicate of the structural electronics floor, kept as defense in depth.
	if req.Category == domain.CategoryElectronics && !req.Price.GreaterThanOrEqual(electronicsPriceFloor) {
		return false, "electronics must be priced at least 50", nil
	}

	// Duplicate of the structural home restricted-word check.
	if req.Category == domain.CategoryHome {
		if word, found := containsAnyWord(req.Name, homeRestrictedWords); found {
			return false, fmt.Sprintf("home product name contains restricted word %q", word), nil
		}
	}

	// Stricter stock limit for very expensive products. The general rule
	// caps stock at 20 above price 100; this one caps it at 10 above 500.
	if req.Price.GreaterThan(strictExpensiveThreshold) && req.StockQuantity > 10 {
		return false, "products priced above 500 are limited to 10 units of stock", nil
	}

	return true, "", nil
}
