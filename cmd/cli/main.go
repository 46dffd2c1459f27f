package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/engine"
	"energy-advisor/internal/model"
	"energy-advisor/internal/sharing"

	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "profile":
		cmdProfile(os.Args[2:])
	case "consumption":
		cmdConsumption(os.Args[2:])
	case "offers":
		cmdOffers(os.Args[2:])
	case "challenges":
		cmdChallenges(os.Args[2:])
	case "partners":
		cmdPartners(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli profile --data ./data --customer 00001")
	fmt.Println("  cli consumption --data ./data --customer 00001 --granularity daily --start 2023-01-01 --end 2023-01-31")
	fmt.Println("  cli offers --data ./data --customer 00001")
	fmt.Println("  cli challenges --data ./data --customer 00001")
	fmt.Println("  cli partners --customer 00001")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --data points at a directory of per-customer CSV curves (timestamp,value)")
	fmt.Println("  - --config / --catalog override the built-in thresholds and offer catalog")
}

type commonFlags struct {
	fs       *flag.FlagSet
	dataDir  *string
	cfgPath  *string
	catPath  *string
	customer *string
}

func common(name string) commonFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return commonFlags{
		fs:       fs,
		dataDir:  fs.String("data", "./data", "Directory of per-customer CSV load curves"),
		cfgPath:  fs.String("config", "", "Optional YAML config path"),
		catPath:  fs.String("catalog", "", "Optional YAML catalog path"),
		customer: fs.String("customer", "", "Customer id"),
	}
}

func (f commonFlags) buildEngine(args []string) *engine.Engine {
	_ = f.fs.Parse(args)
	if *f.customer == "" {
		fmt.Println("--customer is required")
		os.Exit(2)
	}

	cfg := config.Default()
	if *f.cfgPath != "" {
		var err error
		cfg, err = config.Load(*f.cfgPath)
		fatalIf(err)
	}
	cat := catalog.Default()
	if *f.catPath != "" {
		var err error
		cat, err = catalog.Load(*f.catPath)
		fatalIf(err)
	}

	dir := data.DefaultDirectory()
	return engine.New(engine.Deps{
		Config:    cfg,
		Catalog:   cat,
		Curves:    data.NewCSVStore(*f.dataDir),
		Directory: dir,
		Contracts: dir,
		Signals:   sharing.NewMemoryLog(),
		Log:       zerolog.Nop(),
	})
}

func cmdProfile(args []string) {
	f := common("profile")
	eng := f.buildEngine(args)

	p, err := eng.GetProfile(*f.customer)
	fatalIf(err)

	fmt.Printf("customer %s: %s\n", *f.customer, p.Label)
	fmt.Printf("  night/day ratio:     %s\n", fmtRatio(p.NightDayRatio))
	fmt.Printf("  day/night ratio:     %s\n", fmtRatio(p.DayNightRatio))
	fmt.Printf("  winter/summer ratio: %s\n", fmtRatio(p.WinterSummerRatio))
	fmt.Printf("  total: %.0f kWh\n", p.TotalKWh)
	fmt.Println("  hourly profile (kWh):")
	for h := 0; h < 24; h++ {
		bar := ""
		for i := 0.0; i < p.HourlyProfile[h]; i += 0.5 {
			bar += "#"
		}
		fmt.Printf("    %02d:00 %6.2f %s\n", h, p.HourlyProfile[h], bar)
	}
}

func cmdConsumption(args []string) {
	f := common("consumption")
	gran := f.fs.String("granularity", "daily", "hourly, daily or monthly")
	startStr := f.fs.String("start", "", "Window start (YYYY-MM-DD)")
	endStr := f.fs.String("end", "", "Window end, inclusive (YYYY-MM-DD)")
	eng := f.buildEngine(args)

	g, err := model.ParseGranularity(*gran)
	fatalIf(err)
	start, err := time.ParseInLocation("2006-01-02", *startStr, time.Local)
	fatalIf(err)
	end, err := time.ParseInLocation("2006-01-02", *endStr, time.Local)
	fatalIf(err)

	aggs, err := eng.GetAggregate(*f.customer, g, start, end.AddDate(0, 0, 1))
	fatalIf(err)

	fmt.Printf("%-25s %-12s %s\n", "bucket", "kwh", "samples")
	var total float64
	for _, a := range aggs {
		total += a.TotalKWh
		fmt.Printf("%-25s %-12.2f %d\n", a.BucketStart.Format("2006-01-02 15:04"), a.TotalKWh, a.SampleCount)
	}
	fmt.Printf("total: %.2f kWh over %d buckets\n", total, len(aggs))
}

func cmdOffers(args []string) {
	f := common("offers")
	eng := f.buildEngine(args)

	advice, err := eng.GetOfferRecommendations(*f.customer)
	fatalIf(err)

	fmt.Printf("customer %s (profile %s)\n", *f.customer, advice.Profile.Label)
	if advice.Contract != nil {
		fmt.Printf("current contract: %s since %s\n", advice.Contract.OfferID, advice.Contract.StartDate.Format("2006-01-02"))
	}
	fmt.Printf("%-4s %-22s %-10s %s\n", "rank", "offer", "savings%", "ideal for")
	for i, o := range advice.Recommendation.Offers {
		fmt.Printf("%-4d %-22s %-10.0f %v\n", i+1, o.Name, o.HeadlineSavingsPct, o.IdealFor)
	}
	if advice.Recommendation.AlreadyOptimal {
		fmt.Println("already on the best offer; tips:")
		for _, tip := range advice.Tips {
			fmt.Printf("  - %s\n", tip)
		}
	}
}

func cmdChallenges(args []string) {
	f := common("challenges")
	eng := f.buildEngine(args)

	challenges, err := eng.GetChallenges(*f.customer)
	fatalIf(err)

	fmt.Printf("%-14s %-10s %-8s %s\n", "challenge", "reward€", "days", "window")
	for _, ch := range challenges {
		fmt.Printf("%-14s %-10.0f %-8d %02d:00-%02d:00\n",
			ch.ID, ch.RewardAmountEUR, ch.DurationDays, ch.TargetWindow.StartHour, ch.TargetWindow.EndHour)
	}
}

func cmdPartners(args []string) {
	f := common("partners")
	eng := f.buildEngine(args)

	candidates, err := eng.GetPartnerCandidates(*f.customer)
	fatalIf(err)

	fmt.Printf("%-10s %-16s %-10s %-14s %s\n", "producer", "district", "kWp", "kWh/month", "savings%")
	for _, p := range candidates {
		fmt.Printf("%-10s %-16s %-10.0f %-14.0f %.0f\n",
			p.CustomerID, p.District, p.PeakKWp, p.CapacityKWhMonth, p.SavingsPct)
	}
}

func fmtRatio(r model.Ratio) string {
	if !r.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
