package main

import (
	"fmt"
	"os"
	"time"

	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/engine"
	"energy-advisor/internal/model"
	"energy-advisor/internal/sharing"
	"energy-advisor/internal/synth"

	"github.com/rs/zerolog"
)

// demo runs the full advisory pipeline against synthetic curves, no
// files or network needed. One customer per profile shape.
func main() {
	fmt.Println("=== Energy Advisor Demo ===")

	store := data.NewMemoryStore()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	shapes := []struct {
		id    string
		label model.ProfileLabel
	}{
		{"00001", model.ProfileHeatPump},
		{"00002", model.ProfileResidential},
		{"00003", model.ProfileEV},
	}
	for _, s := range shapes {
		curve, err := synth.Generate(s.id, s.label, start, end, 42)
		fatalIf(err)
		store.Put(curve)
	}

	dir := data.DefaultDirectory()
	eng := engine.New(engine.Deps{
		Config:    config.Default(),
		Catalog:   catalog.Default(),
		Curves:    store,
		Directory: dir,
		Contracts: dir,
		Signals:   sharing.NewMemoryLog(),
		Log:       zerolog.Nop(),
	})

	for _, s := range shapes {
		fmt.Printf("\n--- customer %s ---\n", s.id)

		profile, err := eng.GetProfile(s.id)
		fatalIf(err)
		fmt.Printf("profile: %s (night/day %s, winter/summer %s)\n",
			profile.Label, fmtRatio(profile.NightDayRatio), fmtRatio(profile.WinterSummerRatio))

		advice, err := eng.GetOfferRecommendations(s.id)
		fatalIf(err)
		for i, o := range advice.Recommendation.Offers {
			fmt.Printf("  offer %d: %s (save %.0f%%)\n", i+1, o.Name, o.HeadlineSavingsPct)
		}
		if advice.Recommendation.AlreadyOptimal {
			fmt.Println("  already on the best offer")
		}

		challenges, err := eng.GetChallenges(s.id)
		fatalIf(err)
		for _, ch := range challenges {
			fmt.Printf("  challenge: %s (€%.0f)\n", ch.Name, ch.RewardAmountEUR)
		}

		partners, err := eng.GetPartnerCandidates(s.id)
		fatalIf(err)
		for _, p := range partners {
			fmt.Printf("  producer %s in %s (%.0f kWh/month)\n", p.CustomerID, p.District, p.CapacityKWhMonth)
		}
	}

	fmt.Println("\n--- energy sharing signal ---")
	rec, err := eng.SignalInterest("00001", "PROD-5561")
	fatalIf(err)
	fmt.Printf("recorded %s at %s\n", rec.Reference, rec.CreatedAt.Format(time.RFC3339))

	fmt.Println("\ndemo complete")
}

func fmtRatio(r model.Ratio) string {
	if !r.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
