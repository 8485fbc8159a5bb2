// Package repository declares the storage contract shared by every
// aggregate. One concrete implementation exists per aggregate root;
// child entities are persisted only through their owning aggregate.
package repository

import "context"

// Repository is the capability set a persisted aggregate supports.
//
// Update, Find and Delete return a domainerr.NotFoundError when no row
// matches id. FindAll returns an empty slice, not an error, when the table
// is empty; callers must not assume a stable ordering.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, entity *T) error
	Find(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	Delete(ctx context.Context, id string) error
}
