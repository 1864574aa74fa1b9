package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"crosswalk/internal/record"
)

// idLength is the number of hex characters kept from the content digest.
const idLength = 12

// ConsumerID derives the deterministic identifier for a record: the first 12
// hex characters of a SHA-256 digest over the pipe-joined, lowercased core
// attributes. Missing email and phone contribute empty strings, so the same
// person hashes identically regardless of optional-field presence.
func ConsumerID(rec record.Record) string {
	attributes := []string{
		strings.ToLower(rec.FirstName),
		strings.ToLower(rec.LastName),
		strings.ToLower(rec.Street),
		strings.ToLower(rec.City),
		strings.ToLower(rec.State),
		rec.Zip,
		strings.ToLower(rec.Email),
		rec.Phone,
	}
	sum := sha256.Sum256([]byte(strings.Join(attributes, "|")))
	return hex.EncodeToString(sum[:])[:idLength]
}

// Key qualifies a record id by its source collection. Record ids are only
// unique within one collection, so the map is keyed on the qualified form.
func Key(rec record.Record) string {
	return string(rec.Source) + ":" + rec.RecordID
}

// Map holds the record -> consumer id assignments for a resolution run.
// Once a record has an id, re-deriving it returns the cached value, so merge
// field completion can never shift an already-assigned identity.
type Map struct {
	mu  sync.Mutex
	ids map[string]string
}

// NewMap returns an empty identity map.
func NewMap() *Map {
	return &Map{ids: make(map[string]string)}
}

// GetOrCreate returns the record's consumer id, deriving and caching it on
// first use.
func (m *Map) GetOrCreate(rec record.Record) string {
	key := Key(rec)
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[key]; ok {
		return id
	}
	id := ConsumerID(rec)
	m.ids[key] = id
	return id
}

// Assign maps a record to an explicit consumer id, overriding any id it
// would have received standalone. The merge engine uses this to give every
// B-record in a match group the anchor's identity.
func (m *Map) Assign(rec record.Record, consumerID string) {
	m.mu.Lock()
	m.ids[Key(rec)] = consumerID
	m.mu.Unlock()
}

// Lookup returns the id assigned to a qualified record key, if any.
func (m *Map) Lookup(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.ids[key]
	return id, ok
}

// Len reports the number of assignments.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

// Snapshot returns a copy of all assignments keyed by qualified record id.
func (m *Map) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.ids))
	for key, id := range m.ids {
		out[key] = id
	}
	return out
}

// Restore seeds the map with previously persisted assignments. Existing
// in-memory entries win over restored ones.
func (m *Map) Restore(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, id := range entries {
		if _, ok := m.ids[key]; !ok {
			m.ids[key] = id
		}
	}
}
