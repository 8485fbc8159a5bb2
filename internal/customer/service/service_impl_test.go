package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/storefront/internal/customer/domain"
	"github.com/smallbiznis/storefront/internal/customer/repository"
	"github.com/smallbiznis/storefront/pkg/domainerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) domain.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&repository.CustomerModel{}))

	return New(Params{
		Log:  zap.NewNop(),
		Repo: repository.New(db),
	})
}

var address = domain.AddressRequest{
	Street:  "Rua A",
	Number:  5,
	Zipcode: "9000-90",
	City:    "São Paulo",
	State:   "São Paulo",
}

func TestCreateWithAddress(t *testing.T) {
	svc := setup(t)

	customer, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:    "Customer 1",
		Address: &address,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID())
	assert.False(t, customer.IsActive())

	got, ok := customer.Address()
	require.True(t, ok)
	assert.Equal(t, "Rua A", got.Street())
}

func TestCreateValidatesAddress(t *testing.T) {
	svc := setup(t)

	bad := address
	bad.Street = ""
	_, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:    "Customer 1",
		Address: &bad,
	})
	assert.EqualError(t, err, "Street is required")
	assert.True(t, domainerr.IsValidation(err))
}

func TestActivateLifecycle(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	customer, err := svc.Create(ctx, domain.CreateCustomerRequest{ID: "1", Name: "Customer 1"})
	require.NoError(t, err)

	_, err = svc.Activate(ctx, customer.ID())
	assert.EqualError(t, err, "Address is mandatory to activate a customer")

	_, err = svc.ChangeAddress(ctx, customer.ID(), address)
	require.NoError(t, err)

	activated, err := svc.Activate(ctx, customer.ID())
	require.NoError(t, err)
	assert.True(t, activated.IsActive())

	// The flag round-trips through storage.
	found, err := svc.Get(ctx, customer.ID())
	require.NoError(t, err)
	assert.True(t, found.IsActive())

	deactivated, err := svc.Deactivate(ctx, customer.ID())
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive())
}

func TestAddRewardPoints(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{ID: "1", Name: "Customer 1"})
	require.NoError(t, err)

	_, err = svc.AddRewardPoints(ctx, "1", 10)
	require.NoError(t, err)
	customer, err := svc.AddRewardPoints(ctx, "1", 100)
	require.NoError(t, err)
	assert.Equal(t, 110, customer.RewardPoints())
}

func TestGetMissingCustomer(t *testing.T) {
	svc := setup(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.EqualError(t, err, "Customer not found")
}
