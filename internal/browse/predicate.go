// Package browse implements menu search: the per-product predicate, the
// filter and sort pipeline, and the Selection state holder that memoizes
// results for a single view.
package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

// fold returns the caseless form of s. cases.Caser is stateful, so a new one
// is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether p satisfies the search, category and dietary parts
// of cfg. Values outside the known enumerations do not filter anything.
func Matches(p models.Product, cfg models.FilterConfig) bool {
	return matchesSearch(p, fold(cfg.SearchQuery)) &&
		matchesCategory(p, cfg.Category) &&
		matchesDiet(p, cfg.DietaryFilter)
}

// matchesSearch expects an already folded query
func matchesSearch(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold(p.Name), query) ||
		strings.Contains(fold(p.Description), query)
}

func matchesCategory(p models.Product, category string) bool {
	if category == models.All || !models.IsKnownCategory(category) {
		return true
	}
	return p.Category == category
}

func matchesDiet(p models.Product, diet string) bool {
	switch diet {
	case models.DietVeg:
		return p.IsVeg
	case models.DietVegan:
		return p.IsVegan
	case models.DietJain:
		return p.IsJain
	case models.DietGlutenFree:
		return p.IsGlutenFree
	default:
		return true
	}
}
