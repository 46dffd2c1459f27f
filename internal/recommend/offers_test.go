package recommend

import (
	"testing"

	"energy-advisor/internal/catalog"
	"energy-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_RanksBySavingsDescending(t *testing.T) {
	m := NewOfferMatcher([]model.Offer{
		{ID: "a", IdealFor: []model.ProfileLabel{model.ProfileEV}, HeadlineSavingsPct: 10},
		{ID: "b", IdealFor: []model.ProfileLabel{model.ProfileEV}, HeadlineSavingsPct: 40},
		{ID: "c", IdealFor: []model.ProfileLabel{model.ProfileEV}, HeadlineSavingsPct: 25},
	})

	rec := m.Match(model.ProfileEV, "")
	require.Len(t, rec.Offers, 3)
	assert.Equal(t, "b", rec.Offers[0].ID)
	assert.Equal(t, "c", rec.Offers[1].ID)
	assert.Equal(t, "a", rec.Offers[2].ID)
	assert.False(t, rec.FallbackUsed)
}

func TestMatch_TiesKeepCatalogOrder(t *testing.T) {
	m := NewOfferMatcher([]model.Offer{
		{ID: "first", IdealFor: []model.ProfileLabel{model.ProfileOffice}, HeadlineSavingsPct: 10},
		{ID: "second", IdealFor: []model.ProfileLabel{model.ProfileOffice}, HeadlineSavingsPct: 10},
	})

	rec := m.Match(model.ProfileOffice, "")
	require.Len(t, rec.Offers, 2)
	assert.Equal(t, "first", rec.Offers[0].ID)
	assert.Equal(t, "second", rec.Offers[1].ID)
}

func TestMatch_FallbackNeverEmpty(t *testing.T) {
	cat := catalog.Default()
	m := NewOfferMatcher(cat.Offers)

	// No offer in the default catalog is tagged for a label that does
	// not exist; simulate with a label no offer carries.
	rec := m.Match(model.ProfileLabel("unknown"), "")
	assert.True(t, rec.FallbackUsed)
	assert.Len(t, rec.Offers, len(cat.Offers))

	// Fallback list is still ranked by savings.
	for i := 1; i < len(rec.Offers); i++ {
		assert.GreaterOrEqual(t, rec.Offers[i-1].HeadlineSavingsPct, rec.Offers[i].HeadlineSavingsPct)
	}
}

func TestMatch_AlreadyOptimal(t *testing.T) {
	cat := catalog.Default()
	m := NewOfferMatcher(cat.Offers)

	// naturstrom-fix is the only heat pump offer, so a heat pump
	// customer already on it has nothing better to switch to.
	rec := m.Match(model.ProfileHeatPump, "naturstrom-fix")
	require.NotEmpty(t, rec.Offers)
	assert.Equal(t, "naturstrom-fix", rec.Offers[0].ID)
	assert.True(t, rec.AlreadyOptimal)

	rec = m.Match(model.ProfileHeatPump, "nova-naturstroum")
	assert.False(t, rec.AlreadyOptimal)

	rec = m.Match(model.ProfileHeatPump, "")
	assert.False(t, rec.AlreadyOptimal, "no contract on file never reads as optimal")
}
