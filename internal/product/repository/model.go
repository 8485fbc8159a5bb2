package repository

import "github.com/smallbiznis/storefront/internal/product/domain"

// ProductModel is the single-row persistence shape of a product.
type ProductModel struct {
	ID    string  `gorm:"column:id;primaryKey"`
	Name  string  `gorm:"column:name;type:text;not null"`
	Price float64 `gorm:"column:price;not null"`
}

// TableName sets the database table name.
func (ProductModel) TableName() string { return "products" }

func toModel(product *domain.Product) ProductModel {
	return ProductModel{
		ID:    product.ID(),
		Name:  product.Name(),
		Price: product.Price(),
	}
}

func toEntity(model ProductModel) (*domain.Product, error) {
	return domain.NewProduct(model.ID, model.Name, model.Price)
}
