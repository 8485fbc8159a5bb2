package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/storefront/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("product.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	product, err := domain.NewProduct(id, req.Name, req.Price)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product created", zap.String("product_id", product.ID()))
	return product, nil
}

func (s *Service) ChangeName(ctx context.Context, id, name string) (*domain.Product, error) {
	return s.mutate(ctx, id, func(product *domain.Product) error {
		return product.ChangeName(name)
	})
}

func (s *Service) ChangePrice(ctx context.Context, id string, price float64) (*domain.Product, error) {
	return s.mutate(ctx, id, func(product *domain.Product) error {
		return product.ChangePrice(price)
	})
}

func (s *Service) IncreasePrice(ctx context.Context, percent float64) ([]*domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if err := product.ChangePrice(product.Price() * (100 + percent) / 100); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, product.ID(), product); err != nil {
			return nil, err
		}
	}

	s.log.Info("prices increased",
		zap.Float64("percent", percent),
		zap.Int("products", len(products)),
	)
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) mutate(ctx context.Context, id string, change func(*domain.Product) error) (*domain.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := change(product); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, product); err != nil {
		return nil, err
	}
	return product, nil
}
