package e2e_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/repo"
	"github.com/light-bringer/prodintake-service/tests/testutil"
)

// TestCreateProductFlow exercises the whole creation pipeline against the
// in-memory store: validation, policy gates, persistence, projection and
// the single metrics emission.
func TestCreateProductFlow(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	observer := &testutil.CaptureObserver{}
	interactor, _ := testutil.BuildInteractor(store, testutil.NewClock(), observer)

	result, err := interactor.Execute(ctx, testutil.ValidElectronicsRequest())
	require.NoError(t, err)

	view := result.View
	assert.Equal(t, "Electronics & Technology", view.CategoryDisplayName)
	assert.Equal(t, "MT", view.BrandInitials)
	assert.Equal(t, "Limited Stock", view.AvailabilityStatus)
	assert.Equal(t, "2 months old", view.ProductAge)
	assert.True(t, strings.HasPrefix(view.FormattedPrice, "$"), view.FormattedPrice)

	assert.Equal(t, 1, store.Len())
	require.Len(t, observer.Records(), 1)
	assert.True(t, observer.Records()[0].Success)
}

// TestCreateProductFlow_HomeProjection checks the home-category view rules
// end to end: discounted price and no image URL, while the stored entity
// keeps both untouched.
func TestCreateProductFlow_HomeProjection(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	interactor, _ := testutil.BuildInteractor(store, testutil.NewClock(), &testutil.CaptureObserver{})

	result, err := interactor.Execute(ctx, testutil.ValidHomeRequest())
	require.NoError(t, err)

	assert.Equal(t, "Home & Garden", result.View.CategoryDisplayName)
	assert.InDelta(t, 89.99, result.View.Price, 0.0001)
	assert.Nil(t, result.View.ImageURL)
}

// TestConcurrentIdenticalSKU races identical requests through the full
// pipeline. Exactly one may win; every loser gets a typed failure naming
// the sku, and the store holds a single row.
func TestConcurrentIdenticalSKU(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	observer := &testutil.CaptureObserver{}
	interactor, _ := testutil.BuildInteractor(store, testutil.NewClock(), observer)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = interactor.Execute(ctx, testutil.ValidElectronicsRequest())
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		cerr, ok := domain.AsCreationError(err)
		require.True(t, ok, "losers fail with a typed creation error")
		assert.Contains(t,
			[]domain.FailureKind{domain.ValidationFailed, domain.ConstraintViolation},
			cerr.Kind)
		require.NotEmpty(t, cerr.Fields)
		assert.Equal(t, "sku", cerr.Fields[0].Field)
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.Len())
	assert.Len(t, observer.Records(), workers, "every run emits exactly one metrics record")
}
