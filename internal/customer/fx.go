package customer

import (
	"github.com/smallbiznis/storefront/internal/customer/repository"
	"github.com/smallbiznis/storefront/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
