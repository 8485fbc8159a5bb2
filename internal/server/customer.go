package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/smallbiznis/storefront/internal/customer/domain"
)

type addressResponse struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type customerResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      *addressResponse `json:"address,omitempty"`
	Active       bool             `json:"active"`
	RewardPoints int              `json:"reward_points"`
}

func toCustomerResponse(customer *customerdomain.Customer) customerResponse {
	resp := customerResponse{
		ID:           customer.ID(),
		Name:         customer.Name(),
		Active:       customer.IsActive(),
		RewardPoints: customer.RewardPoints(),
	}
	if address, ok := customer.Address(); ok {
		resp.Address = &addressResponse{
			Street:  address.Street(),
			Number:  address.Number(),
			Zipcode: address.Zipcode(),
			City:    address.City(),
			State:   address.State(),
		}
	}
	return resp
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	customer, err := s.customerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, toCustomerResponse(customer))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	customer, err := s.customerSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customerSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ChangeCustomerName(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	customer, err := s.customerSvc.ChangeName(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) ChangeCustomerAddress(c *gin.Context) {
	var req customerdomain.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	customer, err := s.customerSvc.ChangeAddress(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) ActivateCustomer(c *gin.Context) {
	customer, err := s.customerSvc.Activate(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) DeactivateCustomer(c *gin.Context) {
	customer, err := s.customerSvc.Deactivate(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}

func (s *Server) AddRewardPoints(c *gin.Context) {
	var req struct {
		Points int `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	customer, err := s.customerSvc.AddRewardPoints(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Points)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toCustomerResponse(customer)})
}
