package domain

import "github.com/smallbiznis/storefront/pkg/repository"

// Repository persists products as single rows.
type Repository interface {
	repository.Repository[Product]
}
