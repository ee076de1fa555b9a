package browse

import (
	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

// Selection owns the filter configuration of one menu view and the results
// derived from it. Results are recomputed lazily, at most once per change.
//
// A Selection belongs to a single caller and is not safe for concurrent use.
type Selection struct {
	catalog []models.Product
	config  models.FilterConfig

	results []models.Product
	dirty   bool

	// number of pipeline runs, for tests
	runs int
}

// NewSelection returns a Selection over a private copy of catalog, starting
// from the default configuration.
func NewSelection(catalog []models.Product) *Selection {
	c := make([]models.Product, len(catalog))
	copy(c, catalog)
	return &Selection{
		catalog: c,
		config:  models.DefaultFilterConfig(),
		dirty:   true,
	}
}

// Config returns the current filter configuration
func (s *Selection) Config() models.FilterConfig {
	return s.config
}

// SetSearchQuery replaces the search text
func (s *Selection) SetSearchQuery(text string) {
	next := s.config
	next.SearchQuery = text
	s.Apply(next)
}

// SetCategory replaces the category filter
func (s *Selection) SetCategory(id string) {
	next := s.config
	next.Category = id
	s.Apply(next)
}

// SetDietaryFilter replaces the dietary filter
func (s *Selection) SetDietaryFilter(id string) {
	next := s.config
	next.DietaryFilter = id
	s.Apply(next)
}

// SetSortKey replaces the sort key
func (s *Selection) SetSortKey(key string) {
	next := s.config
	next.SortKey = key
	s.Apply(next)
}

// Reset restores the default configuration
func (s *Selection) Reset() {
	s.Apply(models.DefaultFilterConfig())
}

// Apply replaces the whole configuration. Applying the current configuration
// keeps the memoized results.
func (s *Selection) Apply(cfg models.FilterConfig) {
	if cfg == s.config {
		return
	}
	s.config = cfg
	s.dirty = true
}

// Results returns the products matching the current configuration, in sort
// order. The returned slice is a copy.
func (s *Selection) Results() []models.Product {
	if s.dirty {
		s.results = Run(s.catalog, s.config)
		s.dirty = false
		s.runs++
	}
	out := make([]models.Product, len(s.results))
	copy(out, s.results)
	return out
}
