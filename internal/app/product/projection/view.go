// Package projection derives the client-facing view of a persisted product.
package projection

// ProjectedView is the read-only representation returned to callers. It is
// recomputed on every projection and never persisted.
type ProjectedView struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Brand               string  `json:"brand"`
	SKU                 string  `json:"sku"`
	CategoryDisplayName string  `json:"category_display_name"`
	Price               float64 `json:"price"`
	FormattedPrice      string  `json:"formatted_price"`
	ProductAge          string  `json:"product_age"`
	BrandInitials       string  `json:"brand_initials"`
	AvailabilityStatus  string  `json:"availability_status"`
	ImageURL            *string `json:"image_url,omitempty"`
}
