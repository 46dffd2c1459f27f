package models

import (
	"math"
	"time"

	"energy-advisor/internal/model"
)

// CustomerResponse is the directory record for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	District   string `json:"district"`
	AreaCode   string `json:"area_code"`
}

// ContractResponse is the customer's current contract.
type ContractResponse struct {
	CustomerID     string    `json:"customer_id"`
	OfferID        string    `json:"offer_id"`
	OfferName      string    `json:"offer_name,omitempty"`
	StartDate      time.Time `json:"start_date"`
	PriceEURPerKWh float64   `json:"price_eur_kwh"`
}

// ConsumptionResponse carries one aggregation result.
type ConsumptionResponse struct {
	CustomerID  string           `json:"customer_id"`
	Granularity string           `json:"granularity"`
	Unit        string           `json:"unit"`
	TotalKWh    float64          `json:"total_kwh"`
	Buckets     []BucketResponse `json:"buckets"`
}

// BucketResponse is one calendar bucket. SampleCount 0 means no data
// for the bucket, as opposed to measured zero consumption.
type BucketResponse struct {
	BucketStart time.Time `json:"bucket_start"`
	BucketEnd   time.Time `json:"bucket_end"`
	TotalKWh    float64   `json:"total_kwh"`
	SampleCount int       `json:"sample_count"`
}

// ProfileResponse carries a classification result together with the
// ratios that drove it. Undefined or infinite ratios are null.
type ProfileResponse struct {
	CustomerID        string    `json:"customer_id"`
	ProfileType       string    `json:"profile_type"`
	NightDayRatio     *float64  `json:"night_day_ratio"`
	DayNightRatio     *float64  `json:"day_night_ratio"`
	WinterSummerRatio *float64  `json:"winter_summer_ratio"`
	HourlyProfile     []float64 `json:"hourly_profile"`
	TotalKWh          float64   `json:"total_kwh"`
}

// NewProfileResponse converts a domain result to the wire shape.
func NewProfileResponse(p model.ProfileResult) ProfileResponse {
	return ProfileResponse{
		CustomerID:        p.CustomerID,
		ProfileType:       string(p.Label),
		NightDayRatio:     ratioPtr(p.NightDayRatio),
		DayNightRatio:     ratioPtr(p.DayNightRatio),
		WinterSummerRatio: ratioPtr(p.WinterSummerRatio),
		HourlyProfile:     p.HourlyProfile[:],
		TotalKWh:          p.TotalKWh,
	}
}

// ratioPtr returns nil for undefined ratios and for infinities, which
// JSON cannot represent.
func ratioPtr(r model.Ratio) *float64 {
	if !r.Defined || math.IsInf(r.Value, 0) {
		return nil
	}
	v := r.Value
	return &v
}

// RecommendationResponse is the advice payload: ranked offers plus the
// comparison against the current contract. The customer's current
// offer is never hidden from the list.
type RecommendationResponse struct {
	CustomerID     string            `json:"customer_id"`
	ProfileType    string            `json:"profile_type"`
	Contract       *ContractResponse `json:"contract,omitempty"`
	Offers         []model.Offer     `json:"offers"`
	AlreadyOptimal bool              `json:"already_optimal"`
	FallbackUsed   bool              `json:"fallback_used"`
	Tips           []string          `json:"tips,omitempty"`
}

// ChallengesResponse lists the open challenges for a profile.
type ChallengesResponse struct {
	CustomerID string            `json:"customer_id"`
	Challenges []model.Challenge `json:"challenges"`
}

// PartnersResponse lists producer candidates for energy sharing.
type PartnersResponse struct {
	CustomerID string                   `json:"customer_id"`
	Candidates []model.PartnerCandidate `json:"matching_producers"`
}

// SignalResponse acknowledges a recorded expression of interest.
type SignalResponse struct {
	ID         string    `json:"id"`
	ConsumerID string    `json:"consumer_id"`
	ProducerID string    `json:"producer_id"`
	Reference  string    `json:"reference"`
	CreatedAt  time.Time `json:"created_at"`
}

// OffersResponse lists the full offer catalog.
type OffersResponse struct {
	Offers []model.Offer `json:"offers"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
