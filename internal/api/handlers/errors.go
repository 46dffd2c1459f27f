package handlers

import (
	"errors"
	"net/http"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError maps engine error kinds onto HTTP statuses. The engine
// never retries and neither does this layer; the caller gets the typed
// failure verbatim.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrUnknownCustomer):
		status, code = http.StatusNotFound, "UNKNOWN_CUSTOMER"
	case errors.Is(err, model.ErrInvalidWindow):
		status, code = http.StatusUnprocessableEntity, "INVALID_WINDOW"
	case errors.Is(err, model.ErrInsufficientData):
		status, code = http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"
	case errors.Is(err, model.ErrCatalogUnavailable):
		status, code = http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: msg},
	})
}
