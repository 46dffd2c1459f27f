package middleware

import (
	"net/http"

	"energy-advisor/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a structured 500 response so a bad
// request can never take the process down mid-conversation.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			msg = err
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
