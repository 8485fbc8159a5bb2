package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallbiznis/storefront/internal/product/domain"
	"github.com/smallbiznis/storefront/pkg/db"
	"github.com/smallbiznis/storefront/pkg/domainerr"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New builds the product repository on the given session.
func New(conn *gorm.DB) domain.Repository {
	return &repo{db: conn}
}

func (r *repo) Create(ctx context.Context, product *domain.Product) error {
	model := toModel(product)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return fmt.Errorf("product %s: %w", product.ID(), domainerr.ErrAlreadyExists)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, id string, product *domain.Product) error {
	var existing ProductModel
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerr.NotFound("Product")
		}
		return fmt.Errorf("locate product: %w", err)
	}

	model := toModel(product)
	// Map form keeps a zero price writable.
	err := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", id).Updates(map[string]any{
		"name":  model.Name,
		"price": model.Price,
	}).Error
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *repo) Find(ctx context.Context, id string) (*domain.Product, error) {
	var model ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.NotFound("Product")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return toEntity(model)
}

func (r *repo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]*domain.Product, 0, len(models))
	for _, model := range models {
		product, err := toEntity(model)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductModel{})
	if result.Error != nil {
		return fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerr.NotFound("Product")
	}
	return nil
}
