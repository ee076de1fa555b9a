package models

// Sentinel value selecting every category or dietary preference
const All = "all"

// Dietary filter values
const (
	DietVeg        = "veg"
	DietVegan      = "vegan"
	DietJain       = "jain"
	DietGlutenFree = "gluten-free"
)

// Sort keys
const (
	SortPopular   = "popular"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterConfig holds the user selected search, category, dietary and sort
// parameters. It carries no presentation state.
type FilterConfig struct {
	SearchQuery   string `json:"searchQuery" schema:"q"`
	Category      string `json:"category" schema:"category,default:all"`
	DietaryFilter string `json:"dietaryFilter" schema:"diet,default:all"`
	SortKey       string `json:"sortKey" schema:"sort,default:popular"`
}

// DefaultFilterConfig returns the configuration a freshly opened menu starts with
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SearchQuery:   "",
		Category:      All,
		DietaryFilter: All,
		SortKey:       SortPopular,
	}
}

// IsKnownDietaryFilter reports whether d is a supported dietary filter, including All
func IsKnownDietaryFilter(d string) bool {
	switch d {
	case All, DietVeg, DietVegan, DietJain, DietGlutenFree:
		return true
	}
	return false
}

// IsKnownSortKey reports whether k is a supported sort key
func IsKnownSortKey(k string) bool {
	switch k {
	case SortPopular, SortRating, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// Normalize returns a copy of c where values outside the known enumerations
// are replaced by their no-op defaults: All for category and dietary filter,
// SortPopular for the sort key. The search query is left untouched.
func (c FilterConfig) Normalize() FilterConfig {
	if c.Category != All && !IsKnownCategory(c.Category) {
		c.Category = All
	}
	if !IsKnownDietaryFilter(c.DietaryFilter) {
		c.DietaryFilter = All
	}
	if !IsKnownSortKey(c.SortKey) {
		c.SortKey = SortPopular
	}
	return c
}
