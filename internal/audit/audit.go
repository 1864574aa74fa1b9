package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Entry records one evaluated candidate pair with its component scores and
// final decision. Entries are immutable after append.
type Entry struct {
	RecordAID    string
	RecordBID    string
	NameScore    float64
	AddressScore float64
	EmailScore   float64
	PhoneScore   float64
	TotalScore   float64
	Matched      bool
	Timestamp    time.Time
}

// Trail is an append-only sequence of audit entries. Appends are safe for
// concurrent use; entries are never mutated or deleted.
type Trail struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTrail returns an empty audit trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Record appends one entry. A zero timestamp is stamped with the current time.
func (t *Trail) Record(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()
}

// Extend appends a batch of entries in order.
func (t *Trail) Extend(entries []Entry) {
	now := time.Now().UTC()
	t.mu.Lock()
	for _, entry := range entries {
		if entry.Timestamp.IsZero() {
			entry.Timestamp = now
		}
		t.entries = append(t.entries, entry)
	}
	t.mu.Unlock()
}

// Entries returns a copy of the trail for bulk export.
func (t *Trail) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len reports the number of recorded entries.
func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

var header = []string{
	"record_a_id", "record_b_id", "name_score", "address_score",
	"email_score", "phone_score", "total_score", "matched", "timestamp",
}

// WriteFile exports entries as CSV.
func WriteFile(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audit file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write audit header: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.RecordAID,
			entry.RecordBID,
			formatScore(entry.NameScore),
			formatScore(entry.AddressScore),
			formatScore(entry.EmailScore),
			formatScore(entry.PhoneScore),
			formatScore(entry.TotalScore),
			strconv.FormatBool(entry.Matched),
			entry.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write audit row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush audit file: %w", err)
	}
	return nil
}

func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}
