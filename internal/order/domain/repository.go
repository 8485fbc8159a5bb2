package domain

import "github.com/smallbiznis/storefront/pkg/repository"

// Repository persists the order aggregate across the orders and order_items
// tables. Item rows are created, replaced and destroyed only as part of
// operations on their owning order.
type Repository interface {
	repository.Repository[Order]
}
