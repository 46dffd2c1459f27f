package model

import "time"

// Offer is a catalog entry for an energy tariff. Catalogs are loaded
// once at process start and shared read-only across all calls.
type Offer struct {
	ID                 string         `yaml:"id" json:"id"`
	Name               string         `yaml:"name" json:"name"`
	IdealFor           []ProfileLabel `yaml:"ideal_for" json:"ideal_for"`
	Tariff             Tariff         `yaml:"tariff" json:"tariff"`
	HeadlineSavingsPct float64        `yaml:"headline_savings_pct" json:"headline_savings_pct"`
	Description        string         `yaml:"description" json:"description"`
}

// MatchesProfile reports whether the offer is tagged as ideal for label.
func (o Offer) MatchesProfile(label ProfileLabel) bool {
	for _, l := range o.IdealFor {
		if l == label {
			return true
		}
	}
	return false
}

// Tariff describes an offer's price structure. Type is one of
// "fixed", "dual", "p2p" or "green"; the dual-rate fields are only
// set for dual tariffs.
type Tariff struct {
	Type             string  `yaml:"type" json:"type"`
	PriceEURPerKWh   float64 `yaml:"price_eur_kwh" json:"price_eur_kwh,omitempty"`
	DayPriceEURKWh   float64 `yaml:"day_price_eur_kwh" json:"day_price_eur_kwh,omitempty"`
	NightPriceEURKWh float64 `yaml:"night_price_eur_kwh" json:"night_price_eur_kwh,omitempty"`
	NightWindow      string  `yaml:"night_window" json:"night_window,omitempty"`
}

// Challenge is a savings challenge a customer can take on. An empty
// EligibleProfiles set means universally eligible. ActiveFrom/ActiveUntil
// bound the period during which the challenge can be started; a zero
// value leaves that side open.
type Challenge struct {
	ID               string         `yaml:"id" json:"id"`
	Name             string         `yaml:"name" json:"name"`
	Description      string         `yaml:"description" json:"description"`
	TargetWindow     HourWindow     `yaml:"target_window" json:"target_window"`
	EligibleProfiles []ProfileLabel `yaml:"eligible_profiles" json:"eligible_profiles"`
	RewardAmountEUR  float64        `yaml:"reward_amount_eur" json:"reward_amount_eur"`
	DurationDays     int            `yaml:"duration_days" json:"duration_days"`
	ActiveFrom       time.Time      `yaml:"active_from" json:"active_from,omitempty"`
	ActiveUntil      time.Time      `yaml:"active_until" json:"active_until,omitempty"`
}

// EligibleFor reports whether label may take this challenge.
func (ch Challenge) EligibleFor(label ProfileLabel) bool {
	if len(ch.EligibleProfiles) == 0 {
		return true
	}
	for _, l := range ch.EligibleProfiles {
		if l == label {
			return true
		}
	}
	return false
}

// ActiveAt reports whether the challenge's active period contains now.
func (ch Challenge) ActiveAt(now time.Time) bool {
	if !ch.ActiveFrom.IsZero() && now.Before(ch.ActiveFrom) {
		return false
	}
	if !ch.ActiveUntil.IsZero() && !now.Before(ch.ActiveUntil) {
		return false
	}
	return true
}

// HourWindow is a time-of-day range [StartHour, EndHour) on a 24h
// clock. StartHour > EndHour wraps across midnight.
type HourWindow struct {
	StartHour int `yaml:"start_hour" json:"start_hour"`
	EndHour   int `yaml:"end_hour" json:"end_hour"`
}

// Producer is a registered energy-sharing producer, static reference
// data like the offer catalog.
type Producer struct {
	ID               string  `yaml:"id" json:"id"`
	District         string  `yaml:"district" json:"district"`
	AreaCode         string  `yaml:"area_code" json:"area_code"`
	PeakKWp          float64 `yaml:"peak_kwp" json:"peak_kwp"`
	CapacityKWhMonth float64 `yaml:"capacity_kwh_month" json:"capacity_kwh_month"`
	SavingsPct       float64 `yaml:"savings_pct" json:"savings_pct"`
}

// PartnerRole distinguishes the two sides of an energy-sharing pair.
type PartnerRole string

const (
	RoleProducer PartnerRole = "producer"
	RoleConsumer PartnerRole = "consumer"
)

// PartnerCandidate is a producer proposed to a consumer, derived
// per call from the producer registry and the consumer's area.
type PartnerCandidate struct {
	CustomerID       string      `json:"customer_id"`
	Role             PartnerRole `json:"role"`
	District         string      `json:"district"`
	AreaCode         string      `json:"area_code"`
	PeakKWp          float64     `json:"peak_kwp"`
	CapacityKWhMonth float64     `json:"available_kwh_month"`
	SavingsPct       float64     `json:"potential_savings_pct"`
}

// SignalOfInterest records that a consumer expressed interest in an
// energy-sharing partnership. Records are appended, never edited or
// deleted; duplicate pairs are distinct expressions of intent.
type SignalOfInterest struct {
	ID         string    `json:"id"`
	ConsumerID string    `json:"consumer_id"`
	ProducerID string    `json:"producer_id"`
	Reference  string    `json:"reference"`
	CreatedAt  time.Time `json:"created_at"`
}
