package model

import "math"

// ProfileLabel is a behavioral classification of a customer's
// consumption timing and seasonality.
type ProfileLabel string

const (
	ProfileEV          ProfileLabel = "ev"
	ProfileHeatPump    ProfileLabel = "heat_pump"
	ProfileOffice      ProfileLabel = "office"
	ProfileResidential ProfileLabel = "residential"
)

// Ratio is a ratio that may be undefined when one of its inputs is
// missing (e.g. no winter readings). An undefined ratio is never
// treated as 0 or +Inf; rules that depend on it are skipped.
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio builds a defined ratio. A zero denominator yields +Inf,
// meaning a "greater than" condition on it trivially holds.
func DefinedRatio(num, den float64) Ratio {
	if den == 0 {
		return Ratio{Value: math.Inf(1), Defined: true}
	}
	return Ratio{Value: num / den, Defined: true}
}

// UndefinedRatio marks a ratio whose inputs are missing.
func UndefinedRatio() Ratio { return Ratio{} }

// GreaterThan reports whether the ratio is defined and exceeds x.
func (r Ratio) GreaterThan(x float64) bool {
	return r.Defined && r.Value > x
}

// ProfileResult is the outcome of classifying a load curve. It is
// derived on demand and never persisted; all three ratios are carried
// regardless of which rule fired so callers can explain the decision.
type ProfileResult struct {
	CustomerID string
	Label      ProfileLabel

	NightDayRatio     Ratio
	DayNightRatio     Ratio
	WinterSummerRatio Ratio

	// HourlyProfile is the mean consumption per local hour of day, kWh.
	HourlyProfile [24]float64
	TotalKWh      float64
}
