package catalog

import "energy-advisor/internal/model"

// Default returns the built-in catalog used when no catalog file is
// configured. Offer prices and the producer pool mirror the current
// commercial lineup; deployments override via CATALOG_PATH.
func Default() *Catalog {
	return &Catalog{
		Offers: []model.Offer{
			{
				ID:       "naturstrom-fix",
				Name:     "Naturstrom Fix",
				IdealFor: []model.ProfileLabel{model.ProfileHeatPump},
				Tariff: model.Tariff{
					Type:           "fixed",
					PriceEURPerKWh: 0.25,
				},
				HeadlineSavingsPct: 8,
				Description:        "Fixed price, 100% renewable, price security across seasons",
			},
			{
				ID:       "naturstrom-drive",
				Name:     "Naturstrom Drive",
				IdealFor: []model.ProfileLabel{model.ProfileEV},
				Tariff: model.Tariff{
					Type:             "dual",
					DayPriceEURKWh:   0.28,
					NightPriceEURKWh: 0.15,
					NightWindow:      "22:00-06:00",
				},
				HeadlineSavingsPct: 40,
				Description:        "Optimized for EV charging, -40% at night",
			},
			{
				ID:       "energy-sharing",
				Name:     "Energy Sharing",
				IdealFor: []model.ProfileLabel{model.ProfileOffice},
				Tariff: model.Tariff{
					Type:           "p2p",
					PriceEURPerKWh: 0.25,
				},
				HeadlineSavingsPct: 10,
				Description:        "Share with a local solar producer, save up to 10% on network fees",
			},
			{
				ID:       "nova-naturstroum",
				Name:     "Nova Naturstroum",
				IdealFor: []model.ProfileLabel{model.ProfileResidential},
				Tariff: model.Tariff{
					Type:           "green",
					PriceEURPerKWh: 0.23,
				},
				HeadlineSavingsPct: 5,
				Description:        "100% local renewable energy",
			},
		},
		Challenges: []model.Challenge{
			{
				ID:               "night-shift",
				Name:             "Night Shift",
				Description:      "Move flexible loads (EV charging, laundry) into the off-peak window",
				TargetWindow:     model.HourWindow{StartHour: 22, EndHour: 6},
				EligibleProfiles: []model.ProfileLabel{model.ProfileEV, model.ProfileResidential},
				RewardAmountEUR:  25,
				DurationDays:     30,
			},
			{
				ID:               "winter-trim",
				Name:             "Winter Trim",
				Description:      "Reduce heating consumption by 5% against your winter baseline",
				TargetWindow:     model.HourWindow{StartHour: 6, EndHour: 22},
				EligibleProfiles: []model.ProfileLabel{model.ProfileHeatPump},
				RewardAmountEUR:  40,
				DurationDays:     60,
			},
			{
				ID:              "standby-hunt",
				Name:            "Standby Hunt",
				Description:     "Cut overnight standby draw below 0.3 kWh per hour",
				TargetWindow:    model.HourWindow{StartHour: 0, EndHour: 5},
				RewardAmountEUR: 10,
				DurationDays:    14,
			},
		},
		Producers: []model.Producer{
			{
				ID:               "PROD-2847",
				District:         "Kirchberg",
				AreaCode:         "LU-1",
				PeakKWp:          6,
				CapacityKWhMonth: 450,
				SavingsPct:       9,
			},
			{
				ID:               "PROD-1923",
				District:         "Limpertsberg",
				AreaCode:         "LU-1",
				PeakKWp:          4,
				CapacityKWhMonth: 320,
				SavingsPct:       7,
			},
			{
				ID:               "PROD-5561",
				District:         "Gasperich",
				AreaCode:         "LU-1",
				PeakKWp:          8,
				CapacityKWhMonth: 600,
				SavingsPct:       10,
			},
			{
				ID:               "PROD-7104",
				District:         "Bonnevoie",
				AreaCode:         "LU-1",
				PeakKWp:          5,
				CapacityKWhMonth: 380,
				SavingsPct:       8,
			},
			{
				ID:               "PROD-3310",
				District:         "Belval",
				AreaCode:         "LU-2",
				PeakKWp:          10,
				CapacityKWhMonth: 720,
				SavingsPct:       10,
			},
		},
	}
}
