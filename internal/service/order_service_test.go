package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
)

func TestOrderService_CreateOrder(t *testing.T) {
	productRepo := repository.NewInMemoryProductRepository()
	orderService := NewOrderService(productRepo)

	tests := []struct {
		name         string
		req          models.OrderRequest
		wantErr      error
		wantProducts []string
		wantTotal    float64
	}{
		{
			name: "valid order with single item",
			req: models.OrderRequest{
				Items: []models.OrderItem{
					{ProductID: "masala-chai", Quantity: 2},
				},
			},
			wantProducts: []string{"masala-chai"},
			wantTotal:    80,
		},
		{
			name: "valid order with multiple items",
			req: models.OrderRequest{
				Items: []models.OrderItem{
					{ProductID: "paneer-tikka", Quantity: 1},
					{ProductID: "mango-lassi", Quantity: 3},
				},
			},
			wantProducts: []string{"paneer-tikka", "mango-lassi"},
			wantTotal:    490,
		},
		{
			name: "repeated product is listed once",
			req: models.OrderRequest{
				Items: []models.OrderItem{
					{ProductID: "dal-makhani", Quantity: 1},
					{ProductID: "masala-chai", Quantity: 1},
					{ProductID: "dal-makhani", Quantity: 2},
				},
			},
			wantProducts: []string{"dal-makhani", "masala-chai"},
			wantTotal:    760,
		},
		{
			name:    "empty order",
			req:     models.OrderRequest{Items: []models.OrderItem{}},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "invalid quantity - zero",
			req: models.OrderRequest{
				Items: []models.OrderItem{{ProductID: "masala-chai", Quantity: 0}},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "invalid quantity - negative",
			req: models.OrderRequest{
				Items: []models.OrderItem{{ProductID: "masala-chai", Quantity: -1}},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "invalid product - not found",
			req: models.OrderRequest{
				Items: []models.OrderItem{{ProductID: "margherita-pizza", Quantity: 1}},
			},
			wantErr: ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := orderService.CreateOrder(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)

			_, err = uuid.Parse(order.ID)
			assert.NoError(t, err, "order id is a uuid")
			assert.Equal(t, tt.req.Items, order.Items)

			got := make([]string, len(order.Products))
			for i, p := range order.Products {
				got[i] = p.ID
			}
			assert.Equal(t, tt.wantProducts, got)
			assert.InDelta(t, tt.wantTotal, order.Total, 0.001)
		})
	}
}
