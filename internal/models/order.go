package models

// OrderRequest represents an incoming order quote request
type OrderRequest struct {
	Items []OrderItem `json:"items"`
}

// OrderItem represents a single item in an order
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order represents a priced order quote. Quotes are not stored.
type Order struct {
	ID       string      `json:"id"`
	Items    []OrderItem `json:"items"`
	Products []Product   `json:"products"`
	Total    float64     `json:"total"`
}
