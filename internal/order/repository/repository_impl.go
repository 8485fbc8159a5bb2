// Package repository maps the order aggregate onto the orders and
// order_items tables. It is the one mapper that needs a cascade protocol:
// composite insert on create, destroy-then-reinsert of the item set on
// update, items-before-parent on delete. Every multi-row cascade runs
// inside a single transaction so a failure mid-sequence cannot leave a
// half-written aggregate behind.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallbiznis/storefront/internal/order/domain"
	"github.com/smallbiznis/storefront/pkg/db"
	"github.com/smallbiznis/storefront/pkg/domainerr"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New builds the order repository on the given session.
func New(conn *gorm.DB) domain.Repository {
	return &repo{db: conn}
}

// Create inserts the order row together with its full item collection in
// one composite write. gorm persists the Items association inside the same
// transaction as the parent row.
func (r *repo) Create(ctx context.Context, order *domain.Order) error {
	model := toModel(order)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return fmt.Errorf("order %s: %w", order.ID(), domainerr.ErrAlreadyExists)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update overwrites the order's summary fields and replaces the whole item
// set: destroy every existing item row, then bulk-insert the incoming
// collection. Replacing instead of diffing discards nothing the domain
// model knows about, and the surrounding transaction keeps the two steps
// atomic.
func (r *repo) Update(ctx context.Context, id string, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing OrderModel
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerr.NotFound("Order")
			}
			return fmt.Errorf("locate order: %w", err)
		}

		err := tx.Model(&OrderModel{}).Where("id = ?", id).Updates(map[string]any{
			"customer_id": order.CustomerID(),
			"total":       order.Total(),
		}).Error
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return fmt.Errorf("clear order items: %w", err)
		}

		items := toItemModels(order)
		for i := range items {
			items[i].OrderID = id
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
}

// Find fetches the order row with its items and reconstructs the
// aggregate.
func (r *repo) Find(ctx context.Context, id string) (*domain.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.NotFound("Order")
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return toEntity(model)
}

// FindAll reconstructs every persisted order. No orders is an empty slice,
// not an error, and callers get no ordering guarantee.
func (r *repo) FindAll(ctx context.Context) ([]*domain.Order, error) {
	var models []OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, model := range models {
		order, err := toEntity(model)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Delete removes the item rows before the parent row so the item→order
// foreign key is never violated mid-cascade.
func (r *repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing OrderModel
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerr.NotFound("Order")
			}
			return fmt.Errorf("locate order: %w", err)
		}

		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&OrderModel{}).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}
