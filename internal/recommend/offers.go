// Package recommend matches a customer's behavioral profile against
// the static offer and challenge catalogs. Both matchers are pure over
// immutable catalog data, so concurrent calls need no locking.
package recommend

import (
	"sort"

	"energy-advisor/internal/model"
)

// Recommendation is an ordered list of offers, best first, plus the
// comparison against the customer's current contract. The current
// offer is never omitted from the list: callers must be able to show
// the customer their own state.
type Recommendation struct {
	Offers []model.Offer
	// AlreadyOptimal is set when the customer's current offer is the
	// top-ranked one; the engine then suggests tips instead of a switch.
	AlreadyOptimal bool
	// FallbackUsed is set when no offer matched the profile and the
	// full catalog was returned instead.
	FallbackUsed bool
}

// OfferMatcher ranks the offer catalog against a profile label.
type OfferMatcher struct {
	offers []model.Offer
}

func NewOfferMatcher(offers []model.Offer) *OfferMatcher {
	return &OfferMatcher{offers: offers}
}

// Match filters the catalog to offers ideal for label and ranks them
// by headline savings, descending; ties keep catalog insertion order.
// When nothing matches the profile the full catalog is returned, never
// an empty list: the caller always gets something to present.
func (m *OfferMatcher) Match(label model.ProfileLabel, currentOfferID string) Recommendation {
	matched := make([]model.Offer, 0, len(m.offers))
	for _, o := range m.offers {
		if o.MatchesProfile(label) {
			matched = append(matched, o)
		}
	}

	rec := Recommendation{}
	if len(matched) == 0 {
		matched = append(matched, m.offers...)
		rec.FallbackUsed = true
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].HeadlineSavingsPct > matched[j].HeadlineSavingsPct
	})

	rec.Offers = matched
	rec.AlreadyOptimal = currentOfferID != "" && matched[0].ID == currentOfferID
	return rec
}

// GenericTips are the savings suggestions offered when a customer is
// already on the best-matching offer.
var GenericTips = []string{
	"Shift consumption to off-peak hours",
	"Install a smart thermostat",
	"Check for energy-efficient appliances",
	"Consider solar panels",
}
