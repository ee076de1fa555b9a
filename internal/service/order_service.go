package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/kart-storefront/internal/metrics"
	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
)

// productLookup is the part of the product repository the order service needs
type productLookup interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderService prices order quotes against the catalog. Quotes are not
// persisted and no payment is taken.
type OrderService struct {
	products productLookup
}

// NewOrderService creates a new order service
func NewOrderService(products productLookup) *OrderService {
	return &OrderService{
		products: products,
	}
}

// CreateOrder validates the requested items and returns a priced quote
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// products are listed once, in order of first appearance
	seen := make(map[string]models.Product)
	products := make([]models.Product, 0, len(req.Items))
	total := 0.0

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		product, exists := seen[item.ProductID]
		if !exists {
			p, err := s.products.GetByID(ctx, item.ProductID)
			if err != nil {
				return nil, ErrInvalidProduct
			}
			product = *p
			seen[item.ProductID] = product
			products = append(products, product)
		}

		total += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		ID:       generateOrderID(),
		Items:    req.Items,
		Products: products,
		Total:    math.Round(total*100) / 100,
	}

	metrics.ObserveOrderQuote()
	return order, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
