package models

// SignalRequest is the body of POST /api/v1/signals.
type SignalRequest struct {
	ConsumerID string `json:"consumer_id" binding:"required"`
	ProducerID string `json:"producer_id" binding:"required"`
}

// ConsumptionQuery holds the query parameters of the consumption
// endpoint. Start and End are dates (YYYY-MM-DD) or months (YYYY-MM
// for monthly granularity); End is inclusive, matching how customers
// phrase ranges ("from Monday to Sunday").
type ConsumptionQuery struct {
	Granularity string `form:"granularity" binding:"required"`
	Start       string `form:"start" binding:"required"`
	End         string `form:"end" binding:"required"`
}
