// Package repo provides the product store implementations: a Cloud Spanner
// repository for production and an in-memory repository for tests and
// local runs.
package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/models/m_product"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
	"github.com/light-bringer/prodintake-service/internal/pkg/committer"
	"github.com/light-bringer/prodintake-service/internal/pkg/query"
)

// SpannerRepo implements ProductRepository for Spanner. The sku column
// carries a UNIQUE index, so an insert losing a uniqueness race fails with
// AlreadyExists and is reported as domain.ErrDuplicateSKU.
type SpannerRepo struct {
	client    *spanner.Client
	model     *m_product.Model
	committer *committer.Committer
}

// NewSpannerRepo creates a new SpannerRepo.
func NewSpannerRepo(client *spanner.Client, comm *committer.Committer) contracts.ProductRepository {
	return &SpannerRepo{
		client:    client,
		model:     m_product.NewModel(),
		committer: comm,
	}
}

// FindBySKU reports whether a product with the given SKU exists.
func (r *SpannerRepo) FindBySKU(ctx context.Context, sku string) (bool, error) {
	stmt := query.From(m_product.TableName).
		Count().
		Where(query.Eq(m_product.SKU, sku)).
		Build()
	count, err := r.count(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to look up SKU: %w", err)
	}
	return count > 0, nil
}

// FindByNameAndBrand reports whether a product with the name/brand pair exists.
func (r *SpannerRepo) FindByNameAndBrand(ctx context.Context, name, brand string) (bool, error) {
	stmt := query.From(m_product.TableName).
		Count().
		Where(query.Eq(m_product.Name, name)).
		Where(query.Eq(m_product.Brand, brand)).
		Build()
	count, err := r.count(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to look up name and brand: %w", err)
	}
	return count > 0, nil
}

// CountCreatedOn counts products created on the given UTC calendar date.
func (r *SpannerRepo) CountCreatedOn(ctx context.Context, date time.Time) (int64, error) {
	start := clock.DateUTC(date)
	end := start.AddDate(0, 0, 1)
	stmt := query.From(m_product.TableName).
		Count().
		Where(query.Gte(m_product.CreatedAt, start)).
		Where(query.Lt(m_product.CreatedAt, end)).
		Build()
	count, err := r.count(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to count daily creations: %w", err)
	}
	return count, nil
}

// Insert persists a new product through a commit plan.
func (r *SpannerRepo) Insert(ctx context.Context, product *domain.Product) error {
	data, err := r.domainToData(product)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(data))

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Exists checks if a product with the given id exists.
func (r *SpannerRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// count executes a COUNT(*) statement.
func (r *SpannerRepo) count(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// domainToData converts a domain Product to database Data.
func (r *SpannerRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	price := product.Price()
	if !price.IsSafeForStorage() {
		return nil, fmt.Errorf("price exceeds storage capacity")
	}

	data := &m_product.Data{
		ProductID:        product.ID(),
		SKU:              product.SKU(),
		Name:             product.Name(),
		Brand:            product.Brand(),
		Category:         string(product.Category()),
		PriceNumerator:   price.Numerator(),
		PriceDenominator: price.Denominator(),
		ReleaseDate:      product.ReleaseDate(),
		StockQuantity:    product.StockQuantity(),
		IsAvailable:      product.IsAvailable(),
		CreatedAt:        product.CreatedAt(),
	}

	if imageURL := product.ImageURL(); imageURL != nil {
		data.ImageURL = spanner.NullString{StringVal: *imageURL, Valid: true}
	}
	if updatedAt := product.UpdatedAt(); updatedAt != nil {
		data.UpdatedAt = spanner.NullTime{Time: *updatedAt, Valid: true}
	}

	return data, nil
}
