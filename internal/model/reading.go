package model

import (
	"sort"
	"time"
)

// Reading is one sample of a customer's smart meter.
// Quantity is energy consumed during the sampling interval, in kWh.
// Readings are immutable once loaded.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	KWh       float64   `json:"value_kwh"`
}

// LoadCurve is a customer's time-ordered consumption series.
// Invariants:
// - Readings are sorted ascending by Timestamp with no duplicates.
// - The sampling interval is fixed; gaps mean missing data, never
//   interpolated values.
type LoadCurve struct {
	CustomerID string
	Readings   []Reading
}

// Range returns the readings whose timestamp falls in [start, end).
// The curve is ordered, so the result is a contiguous sub-slice.
func (c *LoadCurve) Range(start, end time.Time) []Reading {
	lo := sort.Search(len(c.Readings), func(i int) bool {
		return !c.Readings[i].Timestamp.Before(start)
	})
	hi := lo + sort.Search(len(c.Readings)-lo, func(i int) bool {
		return !c.Readings[lo+i].Timestamp.Before(end)
	})
	return c.Readings[lo:hi]
}

// Span returns the timestamps of the first and last reading.
// ok is false for an empty curve.
func (c *LoadCurve) Span() (start, end time.Time, ok bool) {
	if len(c.Readings) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return c.Readings[0].Timestamp, c.Readings[len(c.Readings)-1].Timestamp, true
}

// TotalKWh sums all reading quantities.
func (c *LoadCurve) TotalKWh() float64 {
	var total float64
	for _, r := range c.Readings {
		total += r.KWh
	}
	return total
}
