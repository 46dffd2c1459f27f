package recommend

import (
	"sort"
	"time"

	"energy-advisor/internal/model"
)

// ChallengeEngine selects savings challenges for a profile. Selection
// has no side effects; reward issuance happens elsewhere.
type ChallengeEngine struct {
	challenges []model.Challenge
}

func NewChallengeEngine(challenges []model.Challenge) *ChallengeEngine {
	return &ChallengeEngine{challenges: challenges}
}

// ChallengesFor returns the challenges whose eligible profiles contain
// label (an empty set means universally eligible) and whose active
// period contains now, ordered by reward amount descending.
func (e *ChallengeEngine) ChallengesFor(label model.ProfileLabel, now time.Time) []model.Challenge {
	out := make([]model.Challenge, 0, len(e.challenges))
	for _, ch := range e.challenges {
		if ch.EligibleFor(label) && ch.ActiveAt(now) {
			out = append(out, ch)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RewardAmountEUR > out[j].RewardAmountEUR
	})
	return out
}
