package rules

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// Fixed word lists. Matching is case-insensitive substring.
var (
	nameDenylist = []string{"fake", "counterfeit", "replica", "stolen", "illegal"}

	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

var (
	brandPattern = regexp.MustCompile(`^[A-Za-z0-9 .\-']+$`)
	skuPattern   = regexp.MustCompile(`^[A-Za-z0-9-]{5,20}$`)
)

// earliestReleaseDate bounds how far back a release date may lie.
var earliestReleaseDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	nameMaxLength  = 200
	brandMinLength = 2
	brandMaxLength = 100
	stockMax       = 100000
)

var priceCeiling, _ = domain.NewMoney(10000, 1)

func containsAnyWord(s string, words []string) (string, bool) {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return w, true
		}
	}
	return "", false
}

func (e *Engine) nameRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	var errs []domain.FieldError
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "name is required"}}, nil
	}
	if len(req.Name) > nameMaxLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", nameMaxLength)})
	}
	if word, found := containsAnyWord(req.Name, nameDenylist); found {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("name must not contain the word %q", word)})
	}
	return errs, nil
}

func (e *Engine) brandRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if strings.TrimSpace(req.Brand) == "" {
		return []domain.FieldError{{Field: "brand", Message: "brand is required"}}, nil
	}
	var errs []domain.FieldError
	if len(req.Brand) < brandMinLength || len(req.Brand) > brandMaxLength {
		errs = append(errs, domain.FieldError{Field: "brand", Message: fmt.Sprintf("brand must be between %d and %d characters", brandMinLength, brandMaxLength)})
	}
	if !brandPattern.MatchString(req.Brand) {
		errs = append(errs, domain.FieldError{Field: "brand", Message: "brand contains invalid characters"})
	}
	return errs, nil
}

func (e *Engine) skuRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	sku := req.NormalizedSKU()
	if sku == "" {
		return []domain.FieldError{{Field: "sku", Message: "SKU is required"}}, nil
	}
	if !skuPattern.MatchString(sku) {
		return []domain.FieldError{{Field: "sku", Message: "SKU must be 5-20 characters of letters, digits or hyphens"}}, nil
	}
	return nil, nil
}

func (e *Engine) categoryRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if !req.Category.Valid() {
		return []domain.FieldError{{Field: "category", Message: "category must be one of electronics, clothing, books, home"}}, nil
	}
	return nil, nil
}

func (e *Engine) priceRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if req.Price == nil || !req.Price.IsPositive() {
		return []domain.FieldError{{Field: "price", Message: "price must be greater than zero"}}, nil
	}
	if !req.Price.LessThan(priceCeiling) {
		return []domain.FieldError{{Field: "price", Message: "price must be less than 10000"}}, nil
	}
	return nil, nil
}

func (e *Engine) releaseDateRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	release := clock.DateUTC(req.ReleaseDate)
	today := clock.TodayUTC(e.clock)
	if release.After(today) {
		return []domain.FieldError{{Field: "release_date", Message: "release date cannot be in the future"}}, nil
	}
	if !release.After(earliestReleaseDate) {
		return []domain.FieldError{{Field: "release_date", Message: "release date must be after 1900-01-01"}}, nil
	}
	return nil, nil
}

func (e *Engine) stockQuantityRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if req.StockQuantity < 0 {
		return []domain.FieldError{{Field: "stock_quantity", Message: "stock quantity cannot be negative"}}, nil
	}
	if req.StockQuantity > stockMax {
		return []domain.FieldError{{Field: "stock_quantity", Message: fmt.Sprintf("stock quantity cannot exceed %d", stockMax)}}, nil
	}
	return nil, nil
}

func (e *Engine) imageURLRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if req.ImageURL == nil || *req.ImageURL == "" {
		return nil, nil
	}
	parsed, err := url.Parse(*req.ImageURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return []domain.FieldError{{Field: "image_url", Message: "image URL must be an absolute http(s) URL"}}, nil
	}
	path := strings.ToLower(parsed.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return nil, nil
		}
	}
	return []domain.FieldError{{Field: "image_url", Message: "image URL must point to a jpg, jpeg, png, gif or webp file"}}, nil
}

// nameBrandUniquenessRule checks the store for an existing name/brand pair.
// Skipped when either field is empty since the structural rules already
// reject those.
func (e *Engine) nameBrandUniquenessRule(ctx context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Brand) == "" {
		return nil, nil
	}
	exists, err := e.repo.FindByNameAndBrand(ctx, req.Name, req.Brand)
	if err != nil {
		return nil, fmt.Errorf("name/brand uniqueness lookup failed: %w", err)
	}
	if exists {
		return []domain.FieldError{{Field: "name", Message: "a product with this name and brand already exists"}}, nil
	}
	return nil, nil
}

func (e *Engine) skuUniquenessRule(ctx context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	sku := req.NormalizedSKU()
	if sku == "" {
		return nil, nil
	}
	exists, err := e.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("SKU uniqueness lookup failed: %w", err)
	}
	if exists {
		return []domain.FieldError{{Field: "sku", Message: domain.ErrDuplicateSKU.Error()}}, nil
	}
	return nil, nil
}

// expensiveStockRule is a whole-request constraint: expensive products need
// limited stock.
func (e *Engine) expensiveStockRule(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if req.Price == nil {
		return nil, nil
	}
	threshold, _ := domain.NewMoney(100, 1)
	if req.Price.GreaterThan(threshold) && req.StockQuantity > 20 {
		return []domain.FieldError{{Field: "stock_quantity", Message: "expensive products need limited stock (at most 20 units above price 100)"}}, nil
	}
	return nil, nil
}
