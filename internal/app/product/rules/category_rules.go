package rules

import (
	"context"
	"fmt"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// Category-conditional word lists.
var (
	technologyKeywords = []string{
		"smart", "tech", "digital", "electronic", "wireless",
		"laptop", "phone", "computer", "tablet", "gadget",
	}

	homeRestrictedWords = []string{"weapon", "knife", "hazard", "explosive", "toxic"}
)

var (
	electronicsPriceFloor, _ = domain.NewMoney(50, 1)
	homePriceCeiling, _      = domain.NewMoney(200, 1)
)

const clothingBrandMinLength = 3

// categoryConditionalRules dispatches the rule group guarded by the
// request's category. Unknown categories are rejected by the category rule,
// so this contributes nothing for them.
func (e *Engine) categoryConditionalRules(ctx context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	switch req.Category {
	case domain.CategoryElectronics:
		return e.electronicsRules(ctx, req)
	case domain.CategoryHome:
		return e.homeRules(ctx, req)
	case domain.CategoryClothing:
		return e.clothingRules(ctx, req)
	default:
		return nil, nil
	}
}

func (e *Engine) electronicsRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	var errs []domain.FieldError
	if req.Price != nil && !req.Price.GreaterThanOrEqual(electronicsPriceFloor) {
		errs = append(errs, domain.FieldError{Field: "price", Message: "electronics must be priced at least 50"})
	}
	if _, found := containsAnyWord(req.Name, technologyKeywords); !found {
		errs = append(errs, domain.FieldError{Field: "name", Message: "electronics name must mention a technology keyword"})
	}
	fiveYearsAgo := clock.TodayUTC(e.clock).AddDate(-5, 0, 0)
	if clock.DateUTC(req.ReleaseDate).Before(fiveYearsAgo) {
		errs = append(errs, domain.FieldError{Field: "release_date", Message: "electronics must have been released within the last 5 years"})
	}
	return errs, nil
}

func (e *Engine) homeRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	var errs []domain.FieldError
	if req.Price != nil && req.Price.GreaterThan(homePriceCeiling) {
		errs = append(errs, domain.FieldError{Field: "price", Message: "home products must be priced at most 200"})
	}
	if word, found := containsAnyWord(req.Name, homeRestrictedWords); found {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("home product name must not contain the word %q", word)})
	}
	return errs, nil
}

func (e *Engine) clothingRules(_ context.Context, req *domain.CreationRequest) ([]domain.FieldError, error) {
	if len(req.Brand) > 0 && len(req.Brand) < clothingBrandMinLength {
		return []domain.FieldError{{Field: "brand", Message: "clothing brand must be at least 3 characters"}}, nil
	}
	return nil, nil
}
