package domain

import "context"

// PlaceOrderItem selects a product and quantity for checkout. Name and unit
// price are snapshotted from the catalog when the order is placed.
type PlaceOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Service interface {
	// Place checks the customer exists, snapshots product name/price into
	// order items, persists the aggregate and credits the customer reward
	// points worth half the order total.
	Place(ctx context.Context, customerID string, items []PlaceOrderItem) (*Order, error)
	// ReplaceItems swaps an order's full item collection for a new one
	// built from current catalog prices.
	ReplaceItems(ctx context.Context, orderID string, items []PlaceOrderItem) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Cancel(ctx context.Context, id string) error
}
