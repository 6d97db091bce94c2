package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/projection"
	"github.com/light-bringer/prodintake-service/internal/app/product/repo"
	"github.com/light-bringer/prodintake-service/internal/app/product/rules"
	"github.com/light-bringer/prodintake-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/prodintake-service/internal/config"
	"github.com/light-bringer/prodintake-service/internal/pkg/cache"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
	"github.com/light-bringer/prodintake-service/internal/pkg/committer"
	httpapi "github.com/light-bringer/prodintake-service/internal/transport/http"
)

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handler       *httpapi.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
// With USE_MEMORY_STORE set, the in-memory repository replaces Spanner for
// local runs.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *slog.Logger, observer contracts.CreationObserver) (*ServiceOptions, error) {
	clk := clock.NewRealClock()

	var productRepo contracts.ProductRepository
	var spannerClient *spanner.Client
	if cfg.UseMemoryStore {
		productRepo = repo.NewMemoryRepo()
	} else {
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		spannerClient = client
		productRepo = repo.NewSpannerRepo(client, committer.NewCommitter(client))
	}

	listingCache := cache.NewMemory()
	engine := rules.NewEngine(productRepo, clk)
	policies := rules.NewPolicyEvaluator(productRepo, clk)
	projector := projection.NewProjector(clk)

	createUseCase := create_product.NewInteractor(
		engine, policies, productRepo, listingCache, projector, observer, clk, logger,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handler:       httpapi.NewHandler(createUseCase, logger),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
