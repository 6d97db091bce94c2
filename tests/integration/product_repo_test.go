//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/repo"
	"github.com/light-bringer/prodintake-service/internal/models/m_product"
	"github.com/light-bringer/prodintake-service/internal/pkg/committer"
	"github.com/light-bringer/prodintake-service/tests/testutil"
)

func storedProduct(id, sku string) *domain.Product {
	price, _ := domain.NewMoney(1500, 1)
	return domain.NewProduct(id, &domain.CreationRequest{
		Name:          "Smart Tech Laptop " + id,
		Brand:         "Mega Tech",
		SKU:           sku,
		Category:      domain.CategoryElectronics,
		Price:         price,
		ReleaseDate:   testutil.FixedNow.AddDate(0, -2, 0),
		StockQuantity: 3,
	}, testutil.FixedNow)
}

func TestSpannerRepo_Insert(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewSpannerRepo(client, committer.NewCommitter(client))

	require.NoError(t, repository.Insert(ctx, storedProduct("test-id-1", "LAP-12345")))
	testutil.AssertRowCount(t, client, m_product.TableName, 1)

	found, err := repository.FindBySKU(ctx, "LAP-12345")
	require.NoError(t, err)
	assert.True(t, found)

	exists, err := repository.Exists(ctx, "test-id-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSpannerRepo_InsertDuplicateSKU(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewSpannerRepo(client, committer.NewCommitter(client))

	require.NoError(t, repository.Insert(ctx, storedProduct("test-id-1", "LAP-12345")))

	err := repository.Insert(ctx, storedProduct("test-id-2", "LAP-12345"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	testutil.AssertRowCount(t, client, m_product.TableName, 1)
}

func TestSpannerRepo_Lookups(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewSpannerRepo(client, committer.NewCommitter(client))

	require.NoError(t, repository.Insert(ctx, storedProduct("test-id-1", "LAP-12345")))

	found, err := repository.FindByNameAndBrand(ctx, "Smart Tech Laptop test-id-1", "Mega Tech")
	require.NoError(t, err)
	assert.True(t, found)

	count, err := repository.CountCreatedOn(ctx, testutil.FixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repository.CountCreatedOn(ctx, testutil.FixedNow.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Zero(t, count)
}
