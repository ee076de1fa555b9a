package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryCache is an in-process ResultCache used to observe service behaviour
type memoryCache struct {
	entries map[models.FilterConfig][]string
	gets    int
	sets    int
	err     error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[models.FilterConfig][]string)}
}

func (m *memoryCache) GetIDs(ctx context.Context, cfg models.FilterConfig) ([]string, bool, error) {
	m.gets++
	if m.err != nil {
		return nil, false, m.err
	}
	ids, ok := m.entries[cfg]
	return ids, ok, nil
}

func (m *memoryCache) SetIDs(ctx context.Context, cfg models.FilterConfig, ids []string) error {
	m.sets++
	if m.err != nil {
		return m.err
	}
	m.entries[cfg] = ids
	return nil
}

func TestProductService_ListProducts(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger())

	products, err := svc.ListProducts(context.Background(), models.FilterConfig{
		Category:      models.CategoryBeverages,
		DietaryFilter: models.DietVegan,
		SortKey:       models.SortPriceLow,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Traditional Shikanji", products[0].Name)

	// zero value config behaves like the defaults
	products, err = svc.ListProducts(context.Background(), models.FilterConfig{})
	require.NoError(t, err)
	assert.Len(t, products, 8)
	assert.Equal(t, "paneer-tikka", products[0].ID)

	products, err = svc.ListProducts(context.Background(), models.FilterConfig{SearchQuery: "pizza"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_ListProducts_Cache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger()).WithCache(cache)
	ctx := context.Background()

	cfg := models.FilterConfig{SearchQuery: "chai", Category: "unknown", DietaryFilter: models.All, SortKey: "bogus"}

	first, err := svc.ListProducts(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// stored under the normalized config
	ids, ok := cache.entries[cfg.Normalize()]
	require.True(t, ok)
	assert.Equal(t, []string{"masala-chai"}, ids)

	second, err := svc.ListProducts(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "hit does not write again")
	assert.Equal(t, 2, cache.gets)
}

func TestProductService_ListProducts_StaleCacheEntry(t *testing.T) {
	cache := newMemoryCache()
	cache.entries[models.DefaultFilterConfig()] = []string{"margherita-pizza"}
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger()).WithCache(cache)

	products, err := svc.ListProducts(context.Background(), models.DefaultFilterConfig())
	require.NoError(t, err)
	assert.Len(t, products, 8)
	assert.Len(t, cache.entries[models.DefaultFilterConfig()], 8, "stale entry replaced")
}

func TestProductService_ListProducts_CacheErrorsAreIgnored(t *testing.T) {
	cache := newMemoryCache()
	cache.err = errors.New("connection refused")
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger()).WithCache(cache)

	products, err := svc.ListProducts(context.Background(), models.DefaultFilterConfig())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestProductService_GetProduct(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger())

	p, err := svc.GetProduct(context.Background(), "chicken-65")
	require.NoError(t, err)
	assert.Equal(t, models.SpiceHot, p.SpiceLevel)

	_, err = svc.GetProduct(context.Background(), "nope")
	assert.True(t, IsNotFound(err))
}

func TestProductService_ListCategories(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository(), discardLogger())

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryCount{
		{ID: models.CategoryBeverages, Count: 3},
		{ID: models.CategoryAppetizers, Count: 3},
		{ID: models.CategoryMainCourse, Count: 2},
		{ID: models.CategoryBreads, Count: 0},
		{ID: models.CategoryDesserts, Count: 0},
	}, categories)
}
