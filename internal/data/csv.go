package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"energy-advisor/internal/model"
)

// csvTimeLayout matches the meter export format: local wall-clock
// time, no zone suffix.
const csvTimeLayout = "2006-01-02 15:04:05"

// CSVStore reads load curves from per-customer CSV files in a
// directory. Files are named <customer_id>.csv with a header row of
// timestamp,value; ids shorter than five characters are also tried
// zero-padded, matching the meter export naming.
type CSVStore struct {
	Dir string
	// Location interprets the timestamps. Defaults to time.Local.
	Location *time.Location
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) LoadCurve(customerID string) (*model.LoadCurve, error) {
	path, err := s.resolve(customerID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curve %s: %w", path, err)
	}
	defer f.Close()

	loc := s.Location
	if loc == nil {
		loc = time.Local
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read curve header %s: %w", path, err)
	}
	tsCol, valCol := columnIndexes(header)
	if tsCol < 0 || valCol < 0 {
		return nil, fmt.Errorf("curve %s: header must contain timestamp and value columns", path)
	}

	var readings []model.Reading
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read curve %s: %w", path, err)
		}
		ts, err := time.ParseInLocation(csvTimeLayout, rec[tsCol], loc)
		if err != nil {
			return nil, fmt.Errorf("curve %s: bad timestamp %q: %w", path, rec[tsCol], err)
		}
		kwh, err := strconv.ParseFloat(rec[valCol], 64)
		if err != nil {
			return nil, fmt.Errorf("curve %s: bad value %q: %w", path, rec[valCol], err)
		}
		readings = append(readings, model.Reading{Timestamp: ts, KWh: kwh})
	}

	// Exports are normally ordered already; sort so the curve
	// invariant holds regardless of the producer.
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})

	return &model.LoadCurve{CustomerID: customerID, Readings: readings}, nil
}

func (s *CSVStore) resolve(customerID string) (string, error) {
	candidates := []string{customerID}
	if len(customerID) < 5 {
		candidates = append(candidates, fmt.Sprintf("%05s", customerID))
	}
	for _, id := range candidates {
		path := filepath.Join(s.Dir, id+".csv")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", model.ErrUnknownCustomer, customerID)
}

func columnIndexes(header []string) (tsCol, valCol int) {
	tsCol, valCol = -1, -1
	for i, h := range header {
		switch h {
		case "timestamp":
			tsCol = i
		case "value", "value_kwh", "kwh":
			valCol = i
		}
	}
	return tsCol, valCol
}
