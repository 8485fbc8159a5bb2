package domain

import "github.com/smallbiznis/storefront/pkg/domainerr"

// OrderItem is a line on an order. Name and unit price are snapshots taken
// from the product at order time; ProductID is a non-owning reference. An
// item has no lifecycle outside the order that owns it.
type OrderItem struct {
	id        string
	name      string
	unitPrice float64
	productID string
	quantity  int
}

// NewOrderItem validates and builds an order line.
func NewOrderItem(id, name string, unitPrice float64, productID string, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, domainerr.Validation("Quantity must be greater than zero")
	}

	return OrderItem{
		id:        id,
		name:      name,
		unitPrice: unitPrice,
		productID: productID,
		quantity:  quantity,
	}, nil
}

func (i OrderItem) ID() string         { return i.id }
func (i OrderItem) Name() string       { return i.name }
func (i OrderItem) UnitPrice() float64 { return i.unitPrice }
func (i OrderItem) ProductID() string  { return i.productID }
func (i OrderItem) Quantity() int      { return i.quantity }

// Price is the line total: unit price times quantity.
func (i OrderItem) Price() float64 {
	return i.unitPrice * float64(i.quantity)
}
