package handlers

import (
	"net/http"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/engine"

	"github.com/gin-gonic/gin"
)

// SharingHandler serves energy-sharing partner matching and interest
// signals.
type SharingHandler struct {
	engine *engine.Engine
}

func NewSharingHandler(e *engine.Engine) *SharingHandler {
	return &SharingHandler{engine: e}
}

// GetPartners handles GET /api/v1/customers/:id/partners
func (h *SharingHandler) GetPartners(c *gin.Context) {
	id := c.Param("id")
	candidates, err := h.engine.GetPartnerCandidates(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PartnersResponse{
		CustomerID: id,
		Candidates: candidates,
	})
}

// SignalInterest handles POST /api/v1/signals
func (h *SharingHandler) SignalInterest(c *gin.Context) {
	var req models.SignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	rec, err := h.engine.SignalInterest(req.ConsumerID, req.ProducerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.SignalResponse{
		ID:         rec.ID,
		ConsumerID: rec.ConsumerID,
		ProducerID: rec.ProducerID,
		Reference:  rec.Reference,
		CreatedAt:  rec.CreatedAt,
	})
}
