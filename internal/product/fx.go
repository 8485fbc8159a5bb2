package product

import (
	"github.com/smallbiznis/storefront/internal/product/repository"
	"github.com/smallbiznis/storefront/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
