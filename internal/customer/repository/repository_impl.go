package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallbiznis/storefront/internal/customer/domain"
	"github.com/smallbiznis/storefront/pkg/db"
	"github.com/smallbiznis/storefront/pkg/domainerr"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New builds the customer repository on the given session.
func New(conn *gorm.DB) domain.Repository {
	return &repo{db: conn}
}

func (r *repo) Create(ctx context.Context, customer *domain.Customer) error {
	model := toModel(customer)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return fmt.Errorf("customer %s: %w", customer.ID(), domainerr.ErrAlreadyExists)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, id string, customer *domain.Customer) error {
	var existing CustomerModel
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerr.NotFound("Customer")
		}
		return fmt.Errorf("locate customer: %w", err)
	}

	model := toModel(customer)
	// Map form keeps zero values (active=false) writable.
	err := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", id).Updates(map[string]any{
		"name":          model.Name,
		"street":        model.Street,
		"number":        model.Number,
		"zipcode":       model.Zipcode,
		"city":          model.City,
		"state":         model.State,
		"active":        model.Active,
		"reward_points": model.RewardPoints,
	}).Error
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *repo) Find(ctx context.Context, id string) (*domain.Customer, error) {
	var model CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.NotFound("Customer")
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return toEntity(model)
}

func (r *repo) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	var models []CustomerModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}

	customers := make([]*domain.Customer, 0, len(models))
	for _, model := range models {
		customer, err := toEntity(model)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CustomerModel{})
	if result.Error != nil {
		return fmt.Errorf("delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerr.NotFound("Customer")
	}
	return nil
}
