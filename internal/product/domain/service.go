package domain

import "context"

// CreateProductRequest creates a product. ID is generated when empty.
type CreateProductRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	ChangeName(ctx context.Context, id, name string) (*Product, error)
	ChangePrice(ctx context.Context, id string, price float64) (*Product, error)
	// IncreasePrice raises every product's price by the given percentage.
	IncreasePrice(ctx context.Context, percent float64) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Delete(ctx context.Context, id string) error
}
