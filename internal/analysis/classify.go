package analysis

import (
	"fmt"
	"time"

	"energy-advisor/internal/config"
	"energy-advisor/internal/model"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// Classifier derives a behavioral profile from a load curve. It is a
// deterministic pure function of the curve's contents: the same curve
// always yields the same result.
type Classifier struct {
	cfg config.ClassifierConfig
	log zerolog.Logger
}

func NewClassifier(cfg config.ClassifierConfig, log zerolog.Logger) *Classifier {
	return &Classifier{
		cfg: cfg,
		log: log.With().Str("component", "classifier").Logger(),
	}
}

// profileRule is one guarded branch of the decision procedure. Rules
// are evaluated top-down and the first match wins; the order is the
// tie-break policy, since the raw ratios are not mutually exclusive.
type profileRule struct {
	label model.ProfileLabel
	fires func(nightDay, dayNight, winterSummer model.Ratio, cfg config.ClassifierConfig) bool
}

var rules = []profileRule{
	{
		label: model.ProfileEV,
		fires: func(nightDay, _, _ model.Ratio, cfg config.ClassifierConfig) bool {
			return nightDay.GreaterThan(cfg.NightDayThreshold)
		},
	},
	{
		label: model.ProfileHeatPump,
		fires: func(_, _, winterSummer model.Ratio, cfg config.ClassifierConfig) bool {
			return winterSummer.GreaterThan(cfg.WinterSummerThreshold)
		},
	},
	{
		label: model.ProfileOffice,
		fires: func(_, dayNight, _ model.Ratio, cfg config.ClassifierConfig) bool {
			return dayNight.GreaterThan(cfg.DayNightThreshold)
		},
	},
}

// Classify computes the timing and seasonality ratios and runs the
// rule list. A curve with no day readings or no night readings fails
// with model.ErrInsufficientData rather than guessing a label. The
// result carries all three ratios regardless of which rule fired.
func (c *Classifier) Classify(curve *model.LoadCurve) (model.ProfileResult, error) {
	if len(curve.Readings) == 0 {
		return model.ProfileResult{}, fmt.Errorf("%w: load curve is empty", model.ErrInsufficientData)
	}

	var (
		dayTotal, nightTotal float64
		dayCount, nightCount int
		hourTotals           [24]float64
		hourCounts           [24]int
	)
	for _, r := range curve.Readings {
		h := r.Timestamp.Hour()
		hourTotals[h] += r.KWh
		hourCounts[h]++
		if h >= c.cfg.DayStartHour && h < c.cfg.DayEndHour {
			dayTotal += r.KWh
			dayCount++
		} else {
			nightTotal += r.KWh
			nightCount++
		}
	}
	if dayCount == 0 || nightCount == 0 {
		return model.ProfileResult{}, fmt.Errorf(
			"%w: curve has no full day/night pair (%d day, %d night readings)",
			model.ErrInsufficientData, dayCount, nightCount)
	}

	nightDay := model.DefinedRatio(nightTotal, dayTotal)
	dayNight := model.DefinedRatio(dayTotal, nightTotal)
	winterSummer := c.seasonalRatio(curve)

	result := model.ProfileResult{
		CustomerID:        curve.CustomerID,
		Label:             model.ProfileResidential,
		NightDayRatio:     nightDay,
		DayNightRatio:     dayNight,
		WinterSummerRatio: winterSummer,
		TotalKWh:          curve.TotalKWh(),
	}
	for h := 0; h < 24; h++ {
		if hourCounts[h] > 0 {
			result.HourlyProfile[h] = hourTotals[h] / float64(hourCounts[h])
		}
	}

	for _, rule := range rules {
		if rule.fires(nightDay, dayNight, winterSummer, c.cfg) {
			result.Label = rule.label
			break
		}
	}

	c.log.Debug().
		Str("customer_id", curve.CustomerID).
		Str("label", string(result.Label)).
		Float64("night_day_ratio", nightDay.Value).
		Bool("winter_summer_defined", winterSummer.Defined).
		Msg("classified load curve")

	return result, nil
}

// seasonalRatio compares mean daily consumption in winter against
// summer. If the curve does not cover both seasons the ratio is
// undefined and the heat pump rule is skipped; undefined is never
// collapsed to 0 or +Inf.
func (c *Classifier) seasonalRatio(curve *model.LoadCurve) model.Ratio {
	winterDaily := dailyTotals(curve, c.cfg.WinterMonths)
	summerDaily := dailyTotals(curve, c.cfg.SummerMonths)
	if len(winterDaily) == 0 || len(summerDaily) == 0 {
		return model.UndefinedRatio()
	}
	winterMean := stat.Mean(winterDaily, nil)
	summerMean := stat.Mean(summerDaily, nil)
	return model.DefinedRatio(winterMean, summerMean)
}

// dailyTotals sums consumption per calendar day for readings whose
// month is in months, returned in day order.
func dailyTotals(curve *model.LoadCurve, months []time.Month) []float64 {
	inSeason := map[time.Month]bool{}
	for _, m := range months {
		inSeason[m] = true
	}

	totals := map[string]float64{}
	var order []string
	for _, r := range curve.Readings {
		if !inSeason[r.Timestamp.Month()] {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		if _, seen := totals[day]; !seen {
			order = append(order, day)
		}
		totals[day] += r.KWh
	}

	out := make([]float64, 0, len(order))
	for _, day := range order {
		out = append(out, totals[day])
	}
	return out
}
