package data

import (
	"fmt"

	"energy-advisor/internal/model"
)

// MemoryStore is a LoadCurveStore backed by a map. Used in tests and
// by the demo command.
type MemoryStore struct {
	curves map[string]*model.LoadCurve
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{curves: map[string]*model.LoadCurve{}}
}

// Put registers a curve. Not safe for concurrent use with LoadCurve;
// populate before serving.
func (s *MemoryStore) Put(curve *model.LoadCurve) {
	s.curves[curve.CustomerID] = curve
}

func (s *MemoryStore) LoadCurve(customerID string) (*model.LoadCurve, error) {
	c, ok := s.curves[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownCustomer, customerID)
	}
	return c, nil
}
