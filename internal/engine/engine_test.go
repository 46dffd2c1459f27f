package engine

import (
	"errors"
	"testing"
	"time"

	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/model"
	"energy-advisor/internal/sharing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// curveFor builds one reading per hour over days days starting at
// start with kwh(t) deciding each value.
func curveFor(id string, start time.Time, days int, kwh func(t time.Time) float64) *model.LoadCurve {
	curve := &model.LoadCurve{CustomerID: id}
	for h := 0; h < days*24; h++ {
		ts := start.Add(time.Duration(h) * time.Hour)
		curve.Readings = append(curve.Readings, model.Reading{Timestamp: ts, KWh: kwh(ts)})
	}
	return curve
}

func seasonalKWh(ts time.Time) float64 {
	switch ts.Month() {
	case time.December, time.January, time.February:
		return 3.0
	default:
		return 1.0
	}
}

func nightKWh(ts time.Time) float64 {
	if h := ts.Hour(); h < 7 || h >= 19 {
		return 2.0
	}
	return 0.5
}

func newTestEngine(t *testing.T) (*Engine, *sharing.MemoryLog) {
	t.Helper()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	store := data.NewMemoryStore()
	// 00001 is a heat pump household, 00002 charges an EV overnight.
	store.Put(curveFor("00001", start, 365, seasonalKWh))
	store.Put(curveFor("00002", start, 60, nightKWh))

	dir := data.DefaultDirectory()
	signals := sharing.NewMemoryLog()
	eng := New(Deps{
		Config:    config.Default(),
		Catalog:   catalog.Default(),
		Curves:    store,
		Directory: dir,
		Contracts: dir,
		Signals:   signals,
		Log:       zerolog.Nop(),
		Now:       func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	return eng, signals
}

func TestEngine_GetProfile(t *testing.T) {
	eng, _ := newTestEngine(t)

	profile, err := eng.GetProfile("00001")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileHeatPump, profile.Label)

	profile, err = eng.GetProfile("00002")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileEV, profile.Label)
}

func TestEngine_GetProfile_UnknownCustomer(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.GetProfile("99999")
	assert.True(t, errors.Is(err, model.ErrUnknownCustomer))
}

func TestEngine_GetAggregate(t *testing.T) {
	eng, _ := newTestEngine(t)
	start := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	buckets, err := eng.GetAggregate("00002", model.GranularityDaily, start, start.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Equal(t, 24, b.SampleCount)
	}
}

func TestEngine_GetAggregate_RejectsWideHourlyWindow(t *testing.T) {
	eng, _ := newTestEngine(t)
	start := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := eng.GetAggregate("00002", model.GranularityHourly, start, start.AddDate(0, 0, 30))
	assert.True(t, errors.Is(err, model.ErrInvalidWindow))
}

func TestEngine_OfferRecommendations_AlreadyOptimal(t *testing.T) {
	eng, _ := newTestEngine(t)

	// 00001 is on naturstrom-fix, the only heat pump offer.
	advice, err := eng.GetOfferRecommendations("00001")
	require.NoError(t, err)

	assert.Equal(t, model.ProfileHeatPump, advice.Profile.Label)
	require.NotNil(t, advice.Contract)
	assert.Equal(t, "naturstrom-fix", advice.Contract.OfferID)
	require.NotNil(t, advice.CurrentOffer)
	assert.True(t, advice.Recommendation.AlreadyOptimal)
	assert.NotEmpty(t, advice.Tips)
}

func TestEngine_OfferRecommendations_SuggestsSwitch(t *testing.T) {
	eng, _ := newTestEngine(t)

	// 00002 is on the residential tariff but drives an EV.
	advice, err := eng.GetOfferRecommendations("00002")
	require.NoError(t, err)

	assert.Equal(t, model.ProfileEV, advice.Profile.Label)
	require.NotEmpty(t, advice.Recommendation.Offers)
	assert.Equal(t, "naturstrom-drive", advice.Recommendation.Offers[0].ID)
	assert.False(t, advice.Recommendation.AlreadyOptimal)
	assert.Empty(t, advice.Tips)
}

func TestEngine_GetChallenges(t *testing.T) {
	eng, _ := newTestEngine(t)

	challenges, err := eng.GetChallenges("00002")
	require.NoError(t, err)
	require.NotEmpty(t, challenges)
	assert.Equal(t, "night-shift", challenges[0].ID)
}

func TestEngine_GetPartnerCandidates(t *testing.T) {
	eng, _ := newTestEngine(t)

	// 00001 is in LU-1, which has four producers, capped at three.
	candidates, err := eng.GetPartnerCandidates("00001")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "PROD-5561", candidates[0].CustomerID)

	_, err = eng.GetPartnerCandidates("99999")
	assert.True(t, errors.Is(err, model.ErrUnknownCustomer))
}

func TestEngine_SignalInterest(t *testing.T) {
	eng, signals := newTestEngine(t)

	rec, err := eng.SignalInterest("00001", "PROD-5561")
	require.NoError(t, err)
	assert.Equal(t, "ES-00001-PROD-5561", rec.Reference)

	// A second signal for the same pair is a second record.
	_, err = eng.SignalInterest("00001", "PROD-5561")
	require.NoError(t, err)
	assert.Len(t, signals.Records(), 2)
}

func TestEngine_SignalInterest_UnknownConsumer(t *testing.T) {
	eng, signals := newTestEngine(t)

	_, err := eng.SignalInterest("99999", "PROD-5561")
	assert.True(t, errors.Is(err, model.ErrUnknownCustomer))
	assert.Empty(t, signals.Records())
}
