// Package rules implements field-level validation and business policy gates
// for product creation requests.
package rules

import (
	"context"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// Rule contributes zero or more field errors for a creation request.
// Store-backed rules may fail with an infrastructure error, which aborts
// validation instead of being reported as a field error.
type Rule func(ctx context.Context, req *domain.CreationRequest) ([]domain.FieldError, error)

// Engine validates creation requests by running an ordered rule list and
// aggregating every failure. Rules do not short-circuit each other: a
// request with three bad fields reports all three.
type Engine struct {
	repo  contracts.ProductRepository
	clock clock.Clock
	rules []Rule
}

// NewEngine creates an Engine wired to the same store the rest of the
// creation flow persists through, so uniqueness lookups see the same
// consistency view.
func NewEngine(repo contracts.ProductRepository, clk clock.Clock) *Engine {
	e := &Engine{repo: repo, clock: clk}
	e.rules = []Rule{
		e.nameRules,
		e.brandRules,
		e.skuRules,
		e.categoryRule,
		e.priceRule,
		e.releaseDateRule,
		e.stockQuantityRule,
		e.imageURLRule,
		e.nameBrandUniquenessRule,
		e.skuUniquenessRule,
		e.categoryConditionalRules,
		e.expensiveStockRule,
	}
	return e
}

// Validate runs every rule against the request. An empty result means the
// request is structurally valid. A non-nil error reports a store failure,
// not a rule failure.
func (e *Engine) Validate(ctx context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	var failures []domain.FieldError
	for _, rule := range e.rules {
		errs, err := rule(ctx, req)
		if err != nil {
			return nil, err
		}
		failures = append(failures, errs...)
	}
	return failures, nil
}
