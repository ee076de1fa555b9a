package models

import "regexp"

// Product represents a menu item available in the storefront catalog.
// Products are read-only once the catalog has been built.
type Product struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Price        float64    `json:"price" yaml:"price"`
	Category     string     `json:"category" yaml:"category"`
	Rating       float64    `json:"rating" yaml:"rating"`
	ReviewCount  int        `json:"reviewCount" yaml:"reviewCount"`
	IsVeg        bool       `json:"isVeg" yaml:"isVeg"`
	IsVegan      bool       `json:"isVegan" yaml:"isVegan"`
	IsJain       bool       `json:"isJain" yaml:"isJain"`
	IsGlutenFree bool       `json:"isGlutenFree" yaml:"isGlutenFree"`
	SpiceLevel   SpiceLevel `json:"spiceLevel" yaml:"spiceLevel"`
	Tags         []string   `json:"tags" yaml:"tags"`
}

// MaxRating is the upper bound of Product.Rating
const MaxRating = 5.0

var productIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValidProductID reports whether id is a lowercase slug such as "masala-chai"
func IsValidProductID(id string) bool {
	return productIDPattern.MatchString(id)
}

// SpiceLevel describes how hot a dish is
type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "none"
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// Valid reports whether s is one of the known spice levels. The empty value is
// accepted and reads as SpiceNone.
func (s SpiceLevel) Valid() bool {
	switch s {
	case "", SpiceNone, SpiceMild, SpiceMedium, SpiceHot:
		return true
	}
	return false
}

// Menu categories, in display order
const (
	CategoryBeverages  = "beverages"
	CategoryAppetizers = "appetizers"
	CategoryMainCourse = "main-course"
	CategoryBreads     = "breads"
	CategoryDesserts   = "desserts"
)

var categories = []string{
	CategoryBeverages,
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryBreads,
	CategoryDesserts,
}

// Categories returns the fixed category enumeration in display order
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsKnownCategory reports whether c is part of the category enumeration
func IsKnownCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryCount is a category together with the number of products in it
type CategoryCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}
