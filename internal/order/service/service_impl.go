// Package service implements checkout on top of the order repository. It
// owns the cross-aggregate reads (customer lookup, catalog snapshots) so
// the aggregate itself only ever holds bare references.
package service

import (
	"context"

	"github.com/google/uuid"
	customerdomain "github.com/smallbiznis/storefront/internal/customer/domain"
	"github.com/smallbiznis/storefront/internal/order/domain"
	productdomain "github.com/smallbiznis/storefront/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Orders    domain.Repository
	Customers customerdomain.Repository
	Products  productdomain.Repository
}

type Service struct {
	log       *zap.Logger
	orders    domain.Repository
	customers customerdomain.Repository
	products  productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("order.service"),
		orders:    p.Orders,
		customers: p.Customers,
		products:  p.Products,
	}
}

func (s *Service) Place(ctx context.Context, customerID string, items []domain.PlaceOrderItem) (*domain.Order, error) {
	customer, err := s.customers.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orderItems, err := s.snapshotItems(ctx, items)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(uuid.NewString(), customer.ID(), orderItems)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Checkout credits the customer half the order total in points.
	customer.AddRewardPoints(int(order.Total() / 2))
	if err := s.customers.Update(ctx, customer.ID(), customer); err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID()),
		zap.String("customer_id", customer.ID()),
		zap.Float64("total", order.Total()),
	)
	return order, nil
}

func (s *Service) ReplaceItems(ctx context.Context, orderID string, items []domain.PlaceOrderItem) (*domain.Order, error) {
	existing, err := s.orders.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderItems, err := s.snapshotItems(ctx, items)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(existing.ID(), existing.CustomerID(), orderItems)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, order.ID(), order); err != nil {
		return nil, err
	}

	s.log.Info("order items replaced",
		zap.String("order_id", order.ID()),
		zap.Float64("total", order.Total()),
	)
	return order, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order canceled", zap.String("order_id", id))
	return nil
}

// snapshotItems resolves each selected product and freezes its name and
// price into an order item.
func (s *Service) snapshotItems(ctx context.Context, items []domain.PlaceOrderItem) ([]domain.OrderItem, error) {
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, selection := range items {
		product, err := s.products.Find(ctx, selection.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := domain.NewOrderItem(
			uuid.NewString(),
			product.Name(),
			product.Price(),
			product.ID(),
			selection.Quantity,
		)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, item)
	}
	return orderItems, nil
}
