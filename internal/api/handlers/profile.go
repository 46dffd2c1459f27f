package handlers

import (
	"net/http"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/engine"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves behavioral profile classification.
type ProfileHandler struct {
	engine *engine.Engine
}

func NewProfileHandler(e *engine.Engine) *ProfileHandler {
	return &ProfileHandler{engine: e}
}

// GetProfile handles GET /api/v1/customers/:id/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.engine.GetProfile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewProfileResponse(profile))
}
