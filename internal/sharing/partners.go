// Package sharing pairs consumption-heavy customers with local solar
// producers and records expressed interest in an append-only log.
package sharing

import (
	"sort"

	"energy-advisor/internal/model"
)

// PartnerMatcher proposes producers from the static registry to a
// consumer. Results are derived per call; nothing is cached.
type PartnerMatcher struct {
	producers  []model.Producer
	maxResults int
}

func NewPartnerMatcher(producers []model.Producer, maxResults int) *PartnerMatcher {
	return &PartnerMatcher{producers: producers, maxResults: maxResults}
}

// FindPartners returns producers in the consumer's area, ranked by
// available capacity descending and capped at the configured maximum
// to keep the response conversational.
func (m *PartnerMatcher) FindPartners(areaCode string) []model.PartnerCandidate {
	out := make([]model.PartnerCandidate, 0, m.maxResults)
	for _, p := range m.producers {
		if p.AreaCode != areaCode {
			continue
		}
		out = append(out, model.PartnerCandidate{
			CustomerID:       p.ID,
			Role:             model.RoleProducer,
			District:         p.District,
			AreaCode:         p.AreaCode,
			PeakKWp:          p.PeakKWp,
			CapacityKWhMonth: p.CapacityKWhMonth,
			SavingsPct:       p.SavingsPct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapacityKWhMonth > out[j].CapacityKWhMonth
	})
	if len(out) > m.maxResults {
		out = out[:m.maxResults]
	}
	return out
}
