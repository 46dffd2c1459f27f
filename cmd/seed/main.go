package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"energy-advisor/internal/model"
	"energy-advisor/internal/synth"
)

// seed writes synthetic hourly load curves in the CSV layout the data
// store reads, one file per customer. Useful for local development and
// demos where no metering export is available.
func main() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	out := fs.String("out", "./data", "Output directory for CSV files")
	id := fs.String("id", "00001", "Customer id (also the file name)")
	profile := fs.String("profile", "residential", "Shape to generate: residential, ev, heat_pump or office")
	startStr := fs.String("start", "", "First day (YYYY-MM-DD); defaults to one year ago")
	days := fs.Int("days", 365, "Number of days to generate")
	seed := fs.Int64("seed", 42, "Random seed, fixed for reproducible fixtures")
	_ = fs.Parse(os.Args[1:])

	label := model.ProfileLabel(*profile)
	if _, ok := synth.Shapes()[label]; !ok {
		fmt.Fprintf(os.Stderr, "unknown profile %q\n", *profile)
		os.Exit(2)
	}

	start := time.Now().AddDate(-1, 0, 0).Truncate(24 * time.Hour)
	if *startStr != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", *startStr, time.Local)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	end := start.AddDate(0, 0, *days)

	curve, err := synth.Generate(*id, label, start, end, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	path := filepath.Join(*out, *id+".csv")
	if err := writeCSV(path, curve); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d readings (%.0f kWh) to %s\n", len(curve.Readings), curve.TotalKWh(), path)
}

func writeCSV(path string, curve *model.LoadCurve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp", "value"}); err != nil {
		return err
	}
	for _, r := range curve.Readings {
		rec := []string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(r.KWh, 'f', 3, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
