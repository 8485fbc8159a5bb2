package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/smallbiznis/storefront/internal/order/domain"
)

type orderItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []orderItemResponse `json:"items"`
	Total      float64             `json:"total"`
}

func toOrderResponse(order *orderdomain.Order) orderResponse {
	items := order.Items()
	resp := orderResponse{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Items:      make([]orderItemResponse, 0, len(items)),
		Total:      order.Total(),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, orderItemResponse{
			ID:        item.ID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}
	return resp
}

type placeOrderRequest struct {
	CustomerID string                       `json:"customer_id"`
	Items      []orderdomain.PlaceOrderItem `json:"items"`
}

func (s *Server) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	order, err := s.orderSvc.Place(c.Request.Context(), strings.TrimSpace(req.CustomerID), req.Items)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toOrderResponse(order)})
}

func (s *Server) ListOrders(c *gin.Context) {
	orders, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	order, err := s.orderSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toOrderResponse(order)})
}

func (s *Server) ReplaceOrderItems(c *gin.Context) {
	var req struct {
		Items []orderdomain.PlaceOrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	order, err := s.orderSvc.ReplaceItems(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Items)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toOrderResponse(order)})
}

func (s *Server) CancelOrder(c *gin.Context) {
	if err := s.orderSvc.Cancel(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"canceled": true}})
}
