package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Lixing-Zhang/kart-storefront/internal/browse"
	"github.com/Lixing-Zhang/kart-storefront/internal/metrics"
	"github.com/Lixing-Zhang/kart-storefront/internal/models"
	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
)

// ResultCache stores ordered product IDs per normalized filter configuration
type ResultCache interface {
	GetIDs(ctx context.Context, cfg models.FilterConfig) ([]string, bool, error)
	SetIDs(ctx context.Context, cfg models.FilterConfig, ids []string) error
}

// ProductService handles business logic for products
type ProductService struct {
	repo   repository.ProductRepository
	cache  ResultCache
	logger *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// WithCache enables the shared result cache
func (s *ProductService) WithCache(cache ResultCache) *ProductService {
	s.cache = cache
	return s
}

// ListProducts returns the products matching cfg in the requested order.
// Out of range filter values are treated as "all" and the sort key as "popular".
func (s *ProductService) ListProducts(ctx context.Context, cfg models.FilterConfig) ([]models.Product, error) {
	cfg = cfg.Normalize()

	if products, ok := s.fromCache(ctx, cfg); ok {
		metrics.ObserveQuery(cfg.SortKey, len(products))
		return products, nil
	}

	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	products := browse.Run(catalog, cfg)
	metrics.ObserveQuery(cfg.SortKey, len(products))

	if s.cache != nil {
		if err := s.cache.SetIDs(ctx, cfg, productIDs(products)); err != nil {
			s.logger.Warn("failed to store query result", "error", err)
		}
	}

	return products, nil
}

// fromCache resolves a cached result. Any failure counts as a miss.
func (s *ProductService) fromCache(ctx context.Context, cfg models.FilterConfig) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}

	ids, found, err := s.cache.GetIDs(ctx, cfg)
	if err != nil {
		metrics.ObserveCacheLookup(metrics.CacheError)
		s.logger.Warn("result cache lookup failed", "error", err)
		return nil, false
	}
	if !found {
		metrics.ObserveCacheLookup(metrics.CacheMiss)
		return nil, false
	}

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			// stale entry from another catalog
			metrics.ObserveCacheLookup(metrics.CacheMiss)
			s.logger.Debug("discarding stale cached result", "product_id", id)
			return nil, false
		}
		products = append(products, *p)
	}

	metrics.ObserveCacheLookup(metrics.CacheHit)
	return products, true
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories returns every known category with its product count, in
// display order. Categories without products are included with a zero count.
func (s *ProductService) ListCategories(ctx context.Context) ([]models.CategoryCount, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range catalog {
		counts[p.Category]++
	}

	known := models.Categories()
	out := make([]models.CategoryCount, 0, len(known))
	for _, c := range known {
		out = append(out, models.CategoryCount{ID: c, Count: counts[c]})
	}
	return out, nil
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// IsNotFound reports whether err means the requested product does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrProductNotFound)
}
