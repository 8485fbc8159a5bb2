// Package domain holds the product entity.
package domain

import "github.com/smallbiznis/storefront/pkg/domainerr"

// Product is a priced catalog entry. Mutations go through the change
// operations so the invariants are re-checked every time.
type Product struct {
	id    string
	name  string
	price float64
}

// NewProduct validates and builds a product.
func NewProduct(id, name string, price float64) (*Product, error) {
	if id == "" {
		return nil, domainerr.Validation("Id is required")
	}
	if name == "" {
		return nil, domainerr.Validation("Name is required")
	}

	return &Product{id: id, name: name, price: price}, nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }

// ChangeName renames the product.
func (p *Product) ChangeName(name string) error {
	if name == "" {
		return domainerr.Validation("Name is required")
	}
	p.name = name
	return nil
}

// ChangePrice replaces the price.
func (p *Product) ChangePrice(price float64) error {
	p.price = price
	return nil
}
