package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/storefront/internal/customer/domain"
	"github.com/smallbiznis/storefront/pkg/domainerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&CustomerModel{}))
	return db
}

func newCustomer(t *testing.T, id, name string) *domain.Customer {
	t.Helper()
	customer, err := domain.NewCustomer(id, name)
	require.NoError(t, err)
	address, err := domain.NewAddress("Rua A", 5, "9000-90", "São Paulo", "São Paulo")
	require.NoError(t, err)
	customer.ChangeAddress(address)
	return customer
}

func TestCreateCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	customer := newCustomer(t, "1", "Customer 1")
	customer.AddRewardPoints(10)
	require.NoError(t, repo.Create(ctx, customer))

	var model CustomerModel
	require.NoError(t, db.First(&model, "id = ?", "1").Error)
	assert.Equal(t, CustomerModel{
		ID:           "1",
		Name:         "Customer 1",
		Street:       "Rua A",
		Number:       5,
		Zipcode:      "9000-90",
		City:         "São Paulo",
		State:        "São Paulo",
		Active:       false,
		RewardPoints: 10,
	}, model)
}

func TestCreateDuplicateCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer(t, "1", "Customer 1")))
	err := repo.Create(ctx, newCustomer(t, "1", "Customer 1 again"))
	assert.ErrorIs(t, err, domainerr.ErrAlreadyExists)
}

func TestUpdateCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	customer := newCustomer(t, "1", "Customer 1")
	customer.AddRewardPoints(10)
	require.NoError(t, repo.Create(ctx, customer))

	require.NoError(t, customer.ChangeName("Customer 2"))
	customer.AddRewardPoints(20)
	require.NoError(t, repo.Update(ctx, customer.ID(), customer))

	found, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Customer 2", found.Name())
	assert.Equal(t, 30, found.RewardPoints())
}

func TestUpdateMissingCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)

	err := repo.Update(context.Background(), "1", newCustomer(t, "1", "Customer 1"))
	assert.EqualError(t, err, "Customer not found")
	assert.True(t, domainerr.IsNotFound(err))
}

func TestFindCustomerRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	customer := newCustomer(t, "1", "Customer 1")
	customer.AddRewardPoints(10)
	require.NoError(t, customer.Activate())
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, customer, found)
}

func TestFindMissingCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)

	_, err := repo.Find(context.Background(), "1")
	assert.EqualError(t, err, "Customer not found")
	assert.True(t, domainerr.IsNotFound(err))
}

func TestFindCustomerWithoutAddress(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer("1", "Customer 1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	_, ok := found.Address()
	assert.False(t, ok)
}

func TestFindAllCustomers(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	first := newCustomer(t, "1", "Customer 1")
	first.AddRewardPoints(10)
	require.NoError(t, first.Activate())
	second := newCustomer(t, "2", "Customer 2")
	second.AddRewardPoints(20)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	customers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Contains(t, customers, first)
	assert.Contains(t, customers, second)
}

func TestDeleteCustomer(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer(t, "1", "Customer 1")))
	require.NoError(t, repo.Create(ctx, newCustomer(t, "2", "Customer 2")))

	require.NoError(t, repo.Delete(ctx, "1"))

	customers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "2", customers[0].ID())

	err = repo.Delete(ctx, "1")
	assert.True(t, domainerr.IsNotFound(err))
}
