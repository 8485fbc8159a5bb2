package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/smallbiznis/storefront/internal/customer/domain"
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
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	customer, err := domain.NewCustomer(id, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		address, err := domain.NewAddress(
			req.Address.Street,
			req.Address.Number,
			req.Address.Zipcode,
			req.Address.City,
			req.Address.State,
		)
		if err != nil {
			return nil, err
		}
		customer.ChangeAddress(address)
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.log.Info("customer created", zap.String("customer_id", customer.ID()))
	return customer, nil
}

func (s *Service) ChangeName(ctx context.Context, id, name string) (*domain.Customer, error) {
	return s.mutate(ctx, id, func(customer *domain.Customer) error {
		return customer.ChangeName(name)
	})
}

func (s *Service) ChangeAddress(ctx context.Context, id string, req domain.AddressRequest) (*domain.Customer, error) {
	address, err := domain.NewAddress(req.Street, req.Number, req.Zipcode, req.City, req.State)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(customer *domain.Customer) error {
		customer.ChangeAddress(address)
		return nil
	})
}

func (s *Service) Activate(ctx context.Context, id string) (*domain.Customer, error) {
	return s.mutate(ctx, id, func(customer *domain.Customer) error {
		return customer.Activate()
	})
}

func (s *Service) Deactivate(ctx context.Context, id string) (*domain.Customer, error) {
	return s.mutate(ctx, id, func(customer *domain.Customer) error {
		customer.Deactivate()
		return nil
	})
}

func (s *Service) AddRewardPoints(ctx context.Context, id string, points int) (*domain.Customer, error) {
	return s.mutate(ctx, id, func(customer *domain.Customer) error {
		customer.AddRewardPoints(points)
		return nil
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("customer deleted", zap.String("customer_id", id))
	return nil
}

// mutate loads the customer, applies the change and writes it back.
func (s *Service) mutate(ctx context.Context, id string, change func(*domain.Customer) error) (*domain.Customer, error) {
	customer, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := change(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
