// Package analysis implements the consumption analysis core: rolling a
// load curve up into calendar buckets and classifying the customer
// into a behavioral profile. All functions here are pure over their
// inputs; results are recomputed per call and never cached.
package analysis

import (
	"fmt"
	"time"

	"energy-advisor/internal/config"
	"energy-advisor/internal/model"
)

// Aggregate rolls curve up into one bucket per calendar unit inside
// window, ordered by bucket start. Buckets are half-open [start, end)
// and aligned to calendar units in the window's timezone; a reading
// belongs to the bucket containing its timestamp. Buckets with no
// readings are emitted with SampleCount 0 so callers can tell "no
// data" from "zero consumption".
//
// Window spans are bounded per granularity (limits.MaxHourlySpanDays,
// limits.MaxDailySpanDays; monthly unrestricted); a span over the
// bound fails with model.ErrInvalidWindow, never a truncated result.
func Aggregate(curve *model.LoadCurve, g model.Granularity, window model.Window, limits config.AggregationConfig) ([]model.Aggregate, error) {
	if !window.Start.Before(window.End) {
		return nil, fmt.Errorf("%w: start %s is not before end %s",
			model.ErrInvalidWindow, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	}
	if err := checkSpan(g, window, limits); err != nil {
		return nil, err
	}

	var out []model.Aggregate
	for start := truncate(window.Start, g); start.Before(window.End); start = step(start, g) {
		end := step(start, g)
		var total float64
		readings := curve.Range(start, end)
		for _, r := range readings {
			total += r.KWh
		}
		out = append(out, model.Aggregate{
			BucketStart: start,
			BucketEnd:   end,
			TotalKWh:    total,
			SampleCount: len(readings),
		})
	}
	return out, nil
}

func checkSpan(g model.Granularity, window model.Window, limits config.AggregationConfig) error {
	var maxDays int
	switch g {
	case model.GranularityHourly:
		maxDays = limits.MaxHourlySpanDays
	case model.GranularityDaily:
		maxDays = limits.MaxDailySpanDays
	case model.GranularityMonthly:
		return nil
	default:
		return fmt.Errorf("unknown granularity %q", g)
	}
	if window.Duration() > time.Duration(maxDays)*24*time.Hour {
		return fmt.Errorf("%w: %s span %s exceeds maximum of %d days",
			model.ErrInvalidWindow, g, window.Duration(), maxDays)
	}
	return nil
}

// truncate aligns t down to the containing calendar unit, keeping the
// timezone. No daylight-saving special-casing; consistency of the
// truncation is what matters.
func truncate(t time.Time, g model.Granularity) time.Time {
	switch g {
	case model.GranularityHourly:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case model.GranularityDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}

func step(t time.Time, g model.Granularity) time.Time {
	switch g {
	case model.GranularityHourly:
		return t.Add(time.Hour)
	case model.GranularityDaily:
		return t.AddDate(0, 0, 1)
	default:
		return t.AddDate(0, 1, 0)
	}
}
