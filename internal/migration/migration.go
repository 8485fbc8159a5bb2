// Package migration brings the schema up to date at startup.
package migration

import (
	customerrepo "github.com/smallbiznis/storefront/internal/customer/repository"
	orderrepo "github.com/smallbiznis/storefront/internal/order/repository"
	productrepo "github.com/smallbiznis/storefront/internal/product/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Migrate),
)

// Migrate runs gorm auto migration over every persistence model. Order
// items come after orders so the foreign key has a target table.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerModel{},
		&productrepo.ProductModel{},
		&orderrepo.OrderModel{},
		&orderrepo.OrderItemModel{},
	); err != nil {
		return err
	}
	log.Info("database migrated")
	return nil
}
