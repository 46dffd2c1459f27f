package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
//
// Every field has a documented default; a missing section yields the
// defaults, so deployments only override what they calibrate
// (thresholds vary per climate and tariff region).
type Config struct {
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Sharing     SharingConfig     `yaml:"sharing"`
}

// ClassifierConfig holds the classification thresholds and boundary
// hours. Defaults: day = [7, 19) local, night/day threshold 1.5,
// winter/summer threshold 2.0, winter Dec-Feb, summer Jun-Aug.
type ClassifierConfig struct {
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`

	NightDayThreshold     float64 `yaml:"night_day_threshold"`
	DayNightThreshold     float64 `yaml:"day_night_threshold"`
	WinterSummerThreshold float64 `yaml:"winter_summer_threshold"`

	WinterMonths []time.Month `yaml:"winter_months"`
	SummerMonths []time.Month `yaml:"summer_months"`
}

// AggregationConfig bounds the spans a caller may request per
// granularity. The bounds keep responses small enough for a
// conversational consumer; they are a contract, so violations are
// rejected rather than truncated. Monthly is unrestricted.
type AggregationConfig struct {
	MaxHourlySpanDays int `yaml:"max_hourly_span_days"`
	MaxDailySpanDays  int `yaml:"max_daily_span_days"`
}

// SharingConfig tunes the energy-sharing matcher.
type SharingConfig struct {
	// MaxPartners caps how many producer candidates one call returns.
	MaxPartners int `yaml:"max_partners"`
}

// Default returns the configuration with all documented defaults applied.
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			DayStartHour:          7,
			DayEndHour:            19,
			NightDayThreshold:     1.5,
			DayNightThreshold:     1.5,
			WinterSummerThreshold: 2.0,
			WinterMonths:          []time.Month{time.December, time.January, time.February},
			SummerMonths:          []time.Month{time.June, time.July, time.August},
		},
		Aggregation: AggregationConfig{
			MaxHourlySpanDays: 7,
			MaxDailySpanDays:  90,
		},
		Sharing: SharingConfig{
			MaxPartners: 3,
		},
	}
}

// Load reads a YAML config, fills defaults for anything unset and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Classifier.DayStartHour == 0 && c.Classifier.DayEndHour == 0 {
		c.Classifier.DayStartHour = def.Classifier.DayStartHour
		c.Classifier.DayEndHour = def.Classifier.DayEndHour
	}
	if c.Classifier.NightDayThreshold == 0 {
		c.Classifier.NightDayThreshold = def.Classifier.NightDayThreshold
	}
	if c.Classifier.DayNightThreshold == 0 {
		c.Classifier.DayNightThreshold = def.Classifier.DayNightThreshold
	}
	if c.Classifier.WinterSummerThreshold == 0 {
		c.Classifier.WinterSummerThreshold = def.Classifier.WinterSummerThreshold
	}
	if len(c.Classifier.WinterMonths) == 0 {
		c.Classifier.WinterMonths = def.Classifier.WinterMonths
	}
	if len(c.Classifier.SummerMonths) == 0 {
		c.Classifier.SummerMonths = def.Classifier.SummerMonths
	}
	if c.Aggregation.MaxHourlySpanDays == 0 {
		c.Aggregation.MaxHourlySpanDays = def.Aggregation.MaxHourlySpanDays
	}
	if c.Aggregation.MaxDailySpanDays == 0 {
		c.Aggregation.MaxDailySpanDays = def.Aggregation.MaxDailySpanDays
	}
	if c.Sharing.MaxPartners == 0 {
		c.Sharing.MaxPartners = def.Sharing.MaxPartners
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	cl := c.Classifier
	if cl.DayStartHour < 0 || cl.DayStartHour > 23 {
		return fmt.Errorf("classifier.day_start_hour %d out of range [0,23]", cl.DayStartHour)
	}
	if cl.DayEndHour < 1 || cl.DayEndHour > 24 {
		return fmt.Errorf("classifier.day_end_hour %d out of range [1,24]", cl.DayEndHour)
	}
	if cl.DayStartHour >= cl.DayEndHour {
		return fmt.Errorf("classifier day window [%d,%d) is empty", cl.DayStartHour, cl.DayEndHour)
	}
	if cl.NightDayThreshold <= 0 || cl.DayNightThreshold <= 0 || cl.WinterSummerThreshold <= 0 {
		return errors.New("classifier thresholds must be > 0")
	}
	for _, m := range append(append([]time.Month{}, cl.WinterMonths...), cl.SummerMonths...) {
		if m < time.January || m > time.December {
			return fmt.Errorf("classifier season month %d out of range", m)
		}
	}
	if c.Aggregation.MaxHourlySpanDays <= 0 {
		return errors.New("aggregation.max_hourly_span_days must be > 0")
	}
	if c.Aggregation.MaxDailySpanDays <= 0 {
		return errors.New("aggregation.max_daily_span_days must be > 0")
	}
	if c.Sharing.MaxPartners <= 0 {
		return errors.New("sharing.max_partners must be > 0")
	}
	return nil
}
