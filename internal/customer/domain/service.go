package domain

import "context"

// AddressRequest carries the raw address fields before validation.
type AddressRequest struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// CreateCustomerRequest creates a customer. ID is generated when empty.
type CreateCustomerRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address *AddressRequest `json:"address,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	ChangeName(ctx context.Context, id, name string) (*Customer, error)
	ChangeAddress(ctx context.Context, id string, address AddressRequest) (*Customer, error)
	Activate(ctx context.Context, id string) (*Customer, error)
	Deactivate(ctx context.Context, id string) (*Customer, error)
	AddRewardPoints(ctx context.Context, id string, points int) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Delete(ctx context.Context, id string) error
}
