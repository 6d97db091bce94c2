package domain

import "strings"

// Category represents the product category assigned at intake.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
)

// ParseCategory maps free-form input onto a known Category.
// The raw lowered value is returned even when unknown so that
// validation can report it as a field error.
func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

// Valid returns true if the category is one of the enumerated values.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryHome:
		return true
	}
	return false
}

// DisplayName returns the storefront label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryElectronics:
		return "Electronics & Technology"
	case CategoryClothing:
		return "Clothing & Fashion"
	case CategoryBooks:
		return "Books & Media"
	case CategoryHome:
		return "Home & Garden"
	default:
		return "Uncategorized"
	}
}
