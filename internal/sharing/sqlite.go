package sharing

import (
	"database/sql"
	"fmt"
	"time"

	"energy-advisor/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteLog is a durable SignalLog. It honors the same contract as
// MemoryLog: append-only, appends serialized through a single
// connection, duplicates allowed.
type SQLiteLog struct {
	db *sql.DB
}

// OpenSQLiteLog opens (or creates) the signal database at path.
func OpenSQLiteLog(path string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open signal log %s: %w", path, err)
	}
	// One connection: sqlite has a single writer anyway and this keeps
	// append ordering identical to arrival ordering.
	db.SetMaxOpenConns(1)

	const schema = `
CREATE TABLE IF NOT EXISTS signals (
	id          TEXT PRIMARY KEY,
	consumer_id TEXT NOT NULL,
	producer_id TEXT NOT NULL,
	reference   TEXT NOT NULL,
	created_at  TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init signal log schema: %w", err)
	}
	return &SQLiteLog{db: db}, nil
}

func (l *SQLiteLog) Append(consumerID, producerID string) (model.SignalOfInterest, error) {
	rec := model.SignalOfInterest{
		ID:         uuid.NewString(),
		ConsumerID: consumerID,
		ProducerID: producerID,
		Reference:  reference(consumerID, producerID),
		CreatedAt:  time.Now().UTC(),
	}
	_, err := l.db.Exec(
		`INSERT INTO signals (id, consumer_id, producer_id, reference, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.ConsumerID, rec.ProducerID, rec.Reference, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.SignalOfInterest{}, fmt.Errorf("append signal: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit signals, newest first.
func (l *SQLiteLog) Recent(limit int) ([]model.SignalOfInterest, error) {
	rows, err := l.db.Query(
		`SELECT id, consumer_id, producer_id, reference, created_at FROM signals ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer rows.Close()

	var out []model.SignalOfInterest
	for rows.Next() {
		var rec model.SignalOfInterest
		var created string
		if err := rows.Scan(&rec.ID, &rec.ConsumerID, &rec.ProducerID, &rec.Reference, &created); err != nil {
			return nil, fmt.Errorf("scan signal: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse signal timestamp %q: %w", created, err)
		}
		rec.CreatedAt = ts
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (l *SQLiteLog) Close() error { return l.db.Close() }
