package projection

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// homeDiscount is the multiplier applied to Home category prices.
var homeDiscount = big.NewRat(9, 10)

// Projector maps a persisted product to its view representation. Projection
// is a pure function of the entity and the current date; no I/O happens here.
type Projector struct {
	clock   clock.Clock
	printer *message.Printer
}

// NewProjector creates a Projector. The clock drives the product-age bucket.
func NewProjector(clk clock.Clock) *Projector {
	return &Projector{
		clock:   clk,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Project computes the view for a product. Home category products get a 10%
// discount rounded to cents and their image URL suppressed.
func (p *Projector) Project(product *domain.Product) ProjectedView {
	price := product.Price()
	if product.Category() == domain.CategoryHome {
		price = price.MultiplyByRat(homeDiscount).RoundedCents()
	}

	view := ProjectedView{
		ID:                  product.ID(),
		Name:                product.Name(),
		Brand:               product.Brand(),
		SKU:                 product.SKU(),
		CategoryDisplayName: product.Category().DisplayName(),
		Price:               price.Float64(),
		FormattedPrice:      p.formatPrice(price),
		ProductAge:          p.productAge(product),
		BrandInitials:       brandInitials(product.Brand()),
		AvailabilityStatus:  availabilityStatus(product),
	}
	if product.Category() != domain.CategoryHome {
		view.ImageURL = product.ImageURL()
	}
	return view
}

// formatPrice renders the (possibly discounted) price with the locale
// currency symbol and two fraction digits.
func (p *Projector) formatPrice(price *domain.Money) string {
	return p.printer.Sprintf("%v", currency.NarrowSymbol(currency.USD.Amount(price.Float64())))
}

// productAge buckets the days elapsed since the release date. Exactly 1825
// days (five years to the day) wins the "Classic" label over the generic
// years bucket.
func (p *Projector) productAge(product *domain.Product) string {
	today := clock.TodayUTC(p.clock)
	release := clock.DateUTC(product.ReleaseDate())
	days := today.Sub(release).Hours() / 24

	switch {
	case days < 30:
		return "New Release"
	case days < 365:
		months := int(days / 30)
		if months <= 1 {
			return "1 month old"
		}
		return fmt.Sprintf("%d months old", months)
	case math.Abs(days-1825) < 0.1:
		return "Classic"
	default:
		years := int(days / 365)
		if years <= 1 {
			return "1 year old"
		}
		return fmt.Sprintf("%d years old", years)
	}
}

// brandInitials derives the short brand marker: first letter for single-word
// brands, first letters of the first and last words otherwise.
func brandInitials(brand string) string {
	words := strings.Fields(brand)
	switch len(words) {
	case 0:
		return "?"
	case 1:
		return firstLetterUpper(words[0])
	default:
		return firstLetterUpper(words[0]) + firstLetterUpper(words[len(words)-1])
	}
}

func firstLetterUpper(word string) string {
	for _, r := range word {
		return string(unicode.ToUpper(r))
	}
	return ""
}

func availabilityStatus(product *domain.Product) string {
	switch {
	case !product.IsAvailable():
		return "Out of Stock"
	case product.StockQuantity() <= 0:
		return "Unavailable"
	case product.StockQuantity() == 1:
		return "Last Item"
	case product.StockQuantity() <= 5:
		return "Limited Stock"
	default:
		return "In Stock"
	}
}
