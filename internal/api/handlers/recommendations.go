package handlers

import (
	"net/http"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/engine"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves offer advice, challenges and the raw
// offer catalog.
type RecommendationHandler struct {
	engine *engine.Engine
}

func NewRecommendationHandler(e *engine.Engine) *RecommendationHandler {
	return &RecommendationHandler{engine: e}
}

// GetRecommendations handles GET /api/v1/customers/:id/recommendations
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	advice, err := h.engine.GetOfferRecommendations(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.RecommendationResponse{
		CustomerID:     advice.CustomerID,
		ProfileType:    string(advice.Profile.Label),
		Offers:         advice.Recommendation.Offers,
		AlreadyOptimal: advice.Recommendation.AlreadyOptimal,
		FallbackUsed:   advice.Recommendation.FallbackUsed,
		Tips:           advice.Tips,
	}
	if advice.Contract != nil {
		resp.Contract = &models.ContractResponse{
			CustomerID:     advice.Contract.CustomerID,
			OfferID:        advice.Contract.OfferID,
			StartDate:      advice.Contract.StartDate,
			PriceEURPerKWh: advice.Contract.PriceEURPerKWh,
		}
		if advice.CurrentOffer != nil {
			resp.Contract.OfferName = advice.CurrentOffer.Name
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetChallenges handles GET /api/v1/customers/:id/challenges
func (h *RecommendationHandler) GetChallenges(c *gin.Context) {
	id := c.Param("id")
	challenges, err := h.engine.GetChallenges(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ChallengesResponse{
		CustomerID: id,
		Challenges: challenges,
	})
}

// ListOffers handles GET /api/v1/offers
func (h *RecommendationHandler) ListOffers(c *gin.Context) {
	c.JSON(http.StatusOK, models.OffersResponse{Offers: h.engine.Offers()})
}
