package browse

import (
	"cmp"
	"slices"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

// CompareFunc orders two products for a sort key
type CompareFunc func(a, b models.Product) int

var comparators = map[string]CompareFunc{
	models.SortPriceLow: func(a, b models.Product) int {
		return cmp.Compare(a.Price, b.Price)
	},
	models.SortPriceHigh: func(a, b models.Product) int {
		return cmp.Compare(b.Price, a.Price)
	},
	models.SortRating: func(a, b models.Product) int {
		return cmp.Compare(b.Rating, a.Rating)
	},
	models.SortPopular: func(a, b models.Product) int {
		return cmp.Compare(b.ReviewCount, a.ReviewCount)
	},
}

// Comparator returns the ordering for sortKey. Unknown keys sort by popularity.
func Comparator(sortKey string) CompareFunc {
	if c, ok := comparators[sortKey]; ok {
		return c
	}
	return comparators[models.SortPopular]
}

// Run filters catalog with cfg and stable sorts the matches by cfg.SortKey.
// The catalog is never modified and the result is never nil.
func Run(catalog []models.Product, cfg models.FilterConfig) []models.Product {
	query := fold(cfg.SearchQuery)

	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if matchesSearch(p, query) && matchesCategory(p, cfg.Category) && matchesDiet(p, cfg.DietaryFilter) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, Comparator(cfg.SortKey))
	return out
}
