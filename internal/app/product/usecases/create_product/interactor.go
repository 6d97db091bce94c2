// Package create_product orchestrates the product creation flow:
// validation, policy gates, SKU guard, persistence, cache invalidation,
// projection and metrics emission.
package create_product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/projection"
	"github.com/light-bringer/prodintake-service/internal/app/product/rules"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// Request contains the data needed to create a product.
type Request struct {
	Name          string
	Brand         string
	SKU           string
	Category      string
	Price         *domain.Money
	ReleaseDate   time.Time
	StockQuantity int64
	ImageURL      *string
}

func (r *Request) toDomain() *domain.CreationRequest {
	return &domain.CreationRequest{
		Name:          r.Name,
		Brand:         r.Brand,
		SKU:           r.SKU,
		Category:      domain.ParseCategory(r.Category),
		Price:         r.Price,
		ReleaseDate:   r.ReleaseDate,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
	}
}

// Result is the successful outcome of a creation: the new id, a location
// reference for it, and the projected view of the stored entity.
type Result struct {
	ID       string
	Location string
	View     projection.ProjectedView
}

// Interactor handles the create product use case.
type Interactor struct {
	engine    *rules.Engine
	policies  *rules.PolicyEvaluator
	repo      contracts.ProductRepository
	cache     contracts.ListingCache
	projector *projection.Projector
	observer  contracts.CreationObserver
	clock     clock.Clock
	logger    *slog.Logger
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	engine *rules.Engine,
	policies *rules.PolicyEvaluator,
	repo contracts.ProductRepository,
	cache contracts.ListingCache,
	projector *projection.Projector,
	observer contracts.CreationObserver,
	clk clock.Clock,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		engine:    engine,
		policies:  policies,
		repo:      repo,
		cache:     cache,
		projector: projector,
		observer:  observer,
		clock:     clk,
		logger:    logger,
	}
}

// Execute runs the creation flow end to end. Exactly one metrics record is
// emitted per call, success or failure. Validation and policy failures
// return a *domain.CreationError; no partial writes occur since persistence
// is attempted only after every upstream gate passes.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	op := newOperationToken()
	started := time.Now()
	metrics := contracts.CreationMetrics{
		OperationID: op,
		SKU:         req.SKU,
		Category:    req.Category,
	}
	creq := req.toDomain()
	metrics.SKU = creq.NormalizedSKU()

	// Validating
	validationStart := time.Now()
	fieldErrs, err := i.engine.Validate(ctx, creq)
	metrics.ValidationDuration = time.Since(validationStart)
	if err != nil {
		return nil, i.fail(ctx, &metrics, started, domain.NewUnexpectedFailure(fmt.Errorf("validation lookups: %w", err)))
	}
	if len(fieldErrs) > 0 {
		return nil, i.fail(ctx, &metrics, started, domain.NewValidationError(fieldErrs...))
	}

	// PolicyChecking
	ok, reason, err := i.policies.Evaluate(ctx, creq)
	if err != nil {
		return nil, i.fail(ctx, &metrics, started, domain.NewUnexpectedFailure(fmt.Errorf("policy evaluation: %w", err)))
	}
	if !ok {
		i.logger.Warn("business policy rejected product",
			"operation_id", op, "sku", metrics.SKU, "reason", reason)
		return nil, i.fail(ctx, &metrics, started, domain.NewValidationError(
			domain.FieldError{Field: "request", Message: "product does not satisfy business rules"},
		))
	}

	// SkuGuard: re-check right before insert to shrink the window between
	// validation and persistence. The store constraint remains the final
	// arbiter for whatever window is left.
	exists, err := i.repo.FindBySKU(ctx, creq.NormalizedSKU())
	if err != nil {
		return nil, i.fail(ctx, &metrics, started, domain.NewUnexpectedFailure(fmt.Errorf("SKU guard: %w", err)))
	}
	if exists {
		return nil, i.fail(ctx, &metrics, started, domain.NewValidationError(
			domain.FieldError{Field: "sku", Message: domain.ErrDuplicateSKU.Error()},
		))
	}

	// Persisting
	product := domain.NewProduct(uuid.NewString(), creq, i.clock.Now())
	persistStart := time.Now()
	err = i.repo.Insert(ctx, product)
	metrics.PersistDuration = time.Since(persistStart)
	if errors.Is(err, domain.ErrDuplicateSKU) {
		return nil, i.fail(ctx, &metrics, started, domain.NewConstraintViolation(err))
	}
	if err != nil {
		i.logger.Error("product insert failed", "operation_id", op, "sku", metrics.SKU, "error", err)
		return nil, i.fail(ctx, &metrics, started, domain.NewUnexpectedFailure(err))
	}

	// Invalidating: best effort, never surfaced.
	if err := i.cache.Evict(ctx, contracts.AllProductsKey); err != nil {
		i.logger.Warn("listing cache eviction failed", "operation_id", op, "error", err)
	}

	// Projecting
	view := i.projector.Project(product)

	// Done
	metrics.Success = true
	metrics.TotalDuration = time.Since(started)
	i.observer.ObserveCreation(ctx, metrics)
	i.logger.Info("product created",
		"operation_id", op, "product_id", product.ID(), "sku", product.SKU())

	return &Result{
		ID:       product.ID(),
		Location: "/products/" + product.ID(),
		View:     view,
	}, nil
}

// fail finalizes the metrics record for a failed run and returns the error.
func (i *Interactor) fail(ctx context.Context, m *contracts.CreationMetrics, started time.Time, cerr *domain.CreationError) error {
	m.Success = false
	m.ErrorReason = cerr.Error()
	m.TotalDuration = time.Since(started)
	i.observer.ObserveCreation(ctx, *m)
	return cerr
}

// newOperationToken returns a short opaque token identifying one run.
func newOperationToken() string {
	return uuid.NewString()[:8]
}
