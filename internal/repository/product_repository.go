package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over an immutable,
// ordered product catalog. It is safe for concurrent readers.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a repository seeded with the default menu
func NewInMemoryProductRepository() *InMemoryProductRepository {
	repo, err := NewProductRepository(DefaultProducts())
	if err != nil {
		// seed data is static
		panic(err)
	}
	return repo
}

// NewProductRepository builds a repository from an injected catalog. The
// catalog order is kept as the canonical order. Products are validated and
// copied so later changes to the input slice are not observed.
func NewProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	repo := &InMemoryProductRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %d (%q): %w", i, p.ID, err)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %d (%q): duplicate id: %w", i, p.ID, ErrInvalidProduct)
		}
		if p.SpiceLevel == "" {
			p.SpiceLevel = models.SpiceNone
		}
		p.Tags = append([]string{}, p.Tags...)

		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}

	return repo, nil
}

func validateProduct(p models.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id: %w", ErrInvalidProduct)
	case !models.IsValidProductID(p.ID):
		return fmt.Errorf("id is not a lowercase slug: %w", ErrInvalidProduct)
	case p.Name == "":
		return fmt.Errorf("missing name: %w", ErrInvalidProduct)
	case !isFinite(p.Price) || p.Price < 0:
		return fmt.Errorf("price %v is not a non-negative number: %w", p.Price, ErrInvalidProduct)
	case p.ReviewCount < 0:
		return fmt.Errorf("negative review count %d: %w", p.ReviewCount, ErrInvalidProduct)
	case !isFinite(p.Rating) || p.Rating < 0 || p.Rating > models.MaxRating:
		return fmt.Errorf("rating %v out of range: %w", p.Rating, ErrInvalidProduct)
	case !models.IsKnownCategory(p.Category):
		return fmt.Errorf("unknown category %q: %w", p.Category, ErrInvalidProduct)
	case !p.SpiceLevel.Valid():
		return fmt.Errorf("unknown spice level %q: %w", p.SpiceLevel, ErrInvalidProduct)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	idx, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[idx]
	return &product, nil
}

// Len returns the number of products in the catalog
func (r *InMemoryProductRepository) Len() int {
	return len(r.products)
}
