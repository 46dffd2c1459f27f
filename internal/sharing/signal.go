package sharing

import (
	"fmt"
	"sync"
	"time"

	"energy-advisor/internal/model"

	"github.com/google/uuid"
)

// SignalLog is the append-only record of expressed interest. Appends
// are serialized by the implementation so no record is lost or
// interleaved; records are never edited or deleted. Appending the same
// pair twice produces two records: each call is a distinct expression
// of intent, so duplicate suppression is deliberately absent.
type SignalLog interface {
	Append(consumerID, producerID string) (model.SignalOfInterest, error)
}

// reference builds the handle quoted back to the customer.
func reference(consumerID, producerID string) string {
	return fmt.Sprintf("ES-%s-%s", consumerID, producerID)
}

// MemoryLog keeps signals in process memory. A single mutex serializes
// appends; timestamps strictly increase within one log so consecutive
// appends for the same pair stay distinguishable even on a coarse clock.
type MemoryLog struct {
	mu      sync.Mutex
	records []model.SignalOfInterest
	now     func() time.Time
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{now: time.Now}
}

func (l *MemoryLog) Append(consumerID, producerID string) (model.SignalOfInterest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().UTC()
	if n := len(l.records); n > 0 && !ts.After(l.records[n-1].CreatedAt) {
		ts = l.records[n-1].CreatedAt.Add(time.Nanosecond)
	}

	rec := model.SignalOfInterest{
		ID:         uuid.NewString(),
		ConsumerID: consumerID,
		ProducerID: producerID,
		Reference:  reference(consumerID, producerID),
		CreatedAt:  ts,
	}
	l.records = append(l.records, rec)
	return rec, nil
}

// Records returns a copy of the log in append order.
func (l *MemoryLog) Records() []model.SignalOfInterest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.SignalOfInterest, len(l.records))
	copy(out, l.records)
	return out
}
