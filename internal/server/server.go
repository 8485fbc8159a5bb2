// Package server exposes the sales services over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/storefront/internal/config"
	customerdomain "github.com/smallbiznis/storefront/internal/customer/domain"
	orderdomain "github.com/smallbiznis/storefront/internal/order/domain"
	productdomain "github.com/smallbiznis/storefront/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	customerSvc customerdomain.Service
	productSvc  productdomain.Service
	orderSvc    orderdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	CustomerSvc customerdomain.Service
	ProductSvc  productdomain.Service
	OrderSvc    orderdomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		customerSvc: p.CustomerSvc,
		productSvc:  p.ProductSvc,
		orderSvc:    p.OrderSvc,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/v1")

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.PATCH("/customers/:id/name", s.ChangeCustomerName)
	api.PUT("/customers/:id/address", s.ChangeCustomerAddress)
	api.POST("/customers/:id/activate", s.ActivateCustomer)
	api.POST("/customers/:id/deactivate", s.DeactivateCustomer)
	api.POST("/customers/:id/reward-points", s.AddRewardPoints)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.PATCH("/products/:id/name", s.ChangeProductName)
	api.PATCH("/products/:id/price", s.ChangeProductPrice)
	api.POST("/products/increase-price", s.IncreaseProductPrices)

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/items", s.ReplaceOrderItems)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}
