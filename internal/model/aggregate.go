package model

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the bucket size for consumption aggregation.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityHourly:
		return GranularityHourly, nil
	case GranularityDaily:
		return GranularityDaily, nil
	case GranularityMonthly:
		return GranularityMonthly, nil
	}
	return "", fmt.Errorf("unknown granularity %q (expected hourly, daily or monthly)", s)
}

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// Aggregate is one calendar-aligned bucket of consumption.
// SampleCount distinguishes "no data" (0) from "zero consumption"
// (> 0 with TotalKWh == 0). Never mutated after creation.
type Aggregate struct {
	BucketStart time.Time `json:"bucket_start"`
	BucketEnd   time.Time `json:"bucket_end"`
	TotalKWh    float64   `json:"total_kwh"`
	SampleCount int       `json:"sample_count"`
}
