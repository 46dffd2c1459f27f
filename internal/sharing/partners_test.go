package sharing

import (
	"testing"

	"energy-advisor/internal/catalog"
	"energy-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPartners_FiltersByArea(t *testing.T) {
	m := NewPartnerMatcher(catalog.Default().Producers, 10)

	candidates := m.FindPartners("LU-2")
	require.Len(t, candidates, 1)
	assert.Equal(t, "PROD-3310", candidates[0].CustomerID)
	assert.Equal(t, model.RoleProducer, candidates[0].Role)
}

func TestFindPartners_RankedByCapacity(t *testing.T) {
	m := NewPartnerMatcher(catalog.Default().Producers, 10)

	candidates := m.FindPartners("LU-1")
	require.Len(t, candidates, 4)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].CapacityKWhMonth, candidates[i].CapacityKWhMonth)
	}
	assert.Equal(t, "PROD-5561", candidates[0].CustomerID)
}

func TestFindPartners_CappedAtMax(t *testing.T) {
	m := NewPartnerMatcher(catalog.Default().Producers, 3)

	candidates := m.FindPartners("LU-1")
	require.Len(t, candidates, 3)
	// The cap keeps the top of the ranking, never a random subset.
	assert.Equal(t, "PROD-5561", candidates[0].CustomerID)
	assert.Equal(t, "PROD-2847", candidates[1].CustomerID)
	assert.Equal(t, "PROD-7104", candidates[2].CustomerID)
}

func TestFindPartners_NoProducersInArea(t *testing.T) {
	m := NewPartnerMatcher(catalog.Default().Producers, 3)
	assert.Empty(t, m.FindPartners("LU-9"))
}
