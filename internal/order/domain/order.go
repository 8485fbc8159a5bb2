// Package domain holds the order aggregate: the order root plus the item
// collection it exclusively owns. CustomerID and the items' ProductIDs are
// bare references to other aggregates, never live objects.
package domain

import "github.com/smallbiznis/storefront/pkg/domainerr"

// Order is the aggregate root. An order with zero items is invalid and can
// never be constructed.
type Order struct {
	id         string
	customerID string
	items      []OrderItem
}

// NewOrder validates and builds an order around its item collection.
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	if id == "" {
		return nil, domainerr.Validation("Id is required")
	}
	if customerID == "" {
		return nil, domainerr.Validation("CustomerId is required")
	}
	if len(items) == 0 {
		return nil, domainerr.Validation("Items are required")
	}

	order := &Order{id: id, customerID: customerID}
	order.items = append(order.items, items...)
	return order, nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Items returns a copy of the item collection; the order keeps ownership.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total sums the line totals with plain float64 arithmetic. No currency
// rounding is applied anywhere.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price()
	}
	return total
}
