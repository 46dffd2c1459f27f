package handlers

import (
	"fmt"
	"net/http"
	"time"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/engine"
	"energy-advisor/internal/model"

	"github.com/gin-gonic/gin"
)

// ConsumptionHandler serves aggregated consumption.
type ConsumptionHandler struct {
	engine *engine.Engine
	// loc interprets date-only query parameters; it should match the
	// timezone of the stored readings.
	loc *time.Location
}

func NewConsumptionHandler(e *engine.Engine, loc *time.Location) *ConsumptionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ConsumptionHandler{engine: e, loc: loc}
}

// GetConsumption handles
// GET /api/v1/customers/:id/consumption?granularity=&start=&end=
func (h *ConsumptionHandler) GetConsumption(c *gin.Context) {
	var q models.ConsumptionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	g, err := model.ParseGranularity(q.Granularity)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	start, end, err := h.parseWindow(g, q.Start, q.End)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id := c.Param("id")
	aggs, err := h.engine.GetAggregate(id, g, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.ConsumptionResponse{
		CustomerID:  id,
		Granularity: string(g),
		Unit:        "kwh",
		Buckets:     make([]models.BucketResponse, 0, len(aggs)),
	}
	for _, a := range aggs {
		resp.TotalKWh += a.TotalKWh
		resp.Buckets = append(resp.Buckets, models.BucketResponse{
			BucketStart: a.BucketStart,
			BucketEnd:   a.BucketEnd,
			TotalKWh:    a.TotalKWh,
			SampleCount: a.SampleCount,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// parseWindow turns inclusive date (or month) parameters into the
// half-open instant window the engine expects.
func (h *ConsumptionHandler) parseWindow(g model.Granularity, startStr, endStr string) (time.Time, time.Time, error) {
	if g == model.GranularityMonthly {
		start, err := time.ParseInLocation("2006-01", startStr, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start month %q, expected YYYY-MM", startStr)
		}
		end, err := time.ParseInLocation("2006-01", endStr, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end month %q, expected YYYY-MM", endStr)
		}
		return start, end.AddDate(0, 1, 0), nil
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", startStr)
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", endStr)
	}
	return start, end.AddDate(0, 0, 1), nil
}
