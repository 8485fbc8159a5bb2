package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/storefront/internal/product/domain"
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
	require.NoError(t, db.AutoMigrate(&ProductModel{}))
	return db
}

func newProduct(t *testing.T, id, name string, price float64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(id, name, price)
	require.NoError(t, err)
	return product
}

func TestCreateAndFindProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	product := newProduct(t, "p1", "Product 1", 100)
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.Find(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, product, found)
}

func TestCreateDuplicateProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProduct(t, "p1", "Product 1", 100)))
	err := repo.Create(ctx, newProduct(t, "p1", "Product 1 again", 200))
	assert.ErrorIs(t, err, domainerr.ErrAlreadyExists)
}

func TestUpdateProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	product := newProduct(t, "p1", "Product 1", 100)
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, product.ChangeName("Product 2"))
	require.NoError(t, product.ChangePrice(250))
	require.NoError(t, repo.Update(ctx, product.ID(), product))

	found, err := repo.Find(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Product 2", found.Name())
	assert.Equal(t, 250.0, found.Price())
}

func TestUpdateMissingProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)

	err := repo.Update(context.Background(), "p1", newProduct(t, "p1", "Product 1", 100))
	assert.EqualError(t, err, "Product not found")
	assert.True(t, domainerr.IsNotFound(err))
}

func TestFindMissingProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)

	_, err := repo.Find(context.Background(), "p1")
	assert.EqualError(t, err, "Product not found")
}

func TestFindAllProducts(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	first := newProduct(t, "p1", "Product 1", 100)
	second := newProduct(t, "p2", "Product 2", 200)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Contains(t, products, first)
	assert.Contains(t, products, second)
}

func TestDeleteProduct(t *testing.T) {
	db := setupDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProduct(t, "p1", "Product 1", 100)))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.Find(ctx, "p1")
	assert.True(t, domainerr.IsNotFound(err))

	err = repo.Delete(ctx, "p1")
	assert.True(t, domainerr.IsNotFound(err))
}
