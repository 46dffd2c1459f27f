package handlers

import (
	"net/http"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/engine"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves directory and contract lookups.
type CustomerHandler struct {
	engine *engine.Engine
}

func NewCustomerHandler(e *engine.Engine) *CustomerHandler {
	return &CustomerHandler{engine: e}
}

// GetCustomer handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.engine.GetCustomer(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CustomerResponse{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Address:    customer.Address,
		Email:      customer.Email,
		District:   customer.District,
		AreaCode:   customer.AreaCode,
	})
}

// GetContract handles GET /api/v1/customers/:id/contract
func (h *CustomerHandler) GetContract(c *gin.Context) {
	id := c.Param("id")
	contract, ok, err := h.engine.GetContract(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NO_CONTRACT", Message: "customer has no contract on file"},
		})
		return
	}

	resp := models.ContractResponse{
		CustomerID:     contract.CustomerID,
		OfferID:        contract.OfferID,
		StartDate:      contract.StartDate,
		PriceEURPerKWh: contract.PriceEURPerKWh,
	}
	for _, o := range h.engine.Offers() {
		if o.ID == contract.OfferID {
			resp.OfferName = o.Name
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}
