package domain

import "github.com/smallbiznis/storefront/pkg/repository"

// Repository persists customers as single rows with the address flattened
// into street/number/zipcode/city/state columns.
type Repository interface {
	repository.Repository[Customer]
}
