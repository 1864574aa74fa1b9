package identity_test

import (
	"regexp"
	"testing"

	"crosswalk/internal/identity"
	"crosswalk/internal/record"
)

func sample() record.Record {
	return record.Record{
		RecordID:  "1",
		FirstName: "John",
		LastName:  "Doe",
		Street:    "123 Main St",
		City:      "Anytown",
		State:     "CA",
		Zip:       "12345",
		Email:     "john@email.com",
		Phone:     "5551234567",
		Source:    record.CollectionA,
	}
}

var hexID = regexp.MustCompile(`^[0-9a-f]{12}$`)

func TestConsumerIDShape(t *testing.T) {
	id := identity.ConsumerID(sample())
	if !hexID.MatchString(id) {
		t.Fatalf("consumer id %q is not 12 lowercase hex chars", id)
	}
}

func TestConsumerIDDeterministic(t *testing.T) {
	if identity.ConsumerID(sample()) != identity.ConsumerID(sample()) {
		t.Fatal("same fields must produce the same id")
	}

	upper := sample()
	upper.FirstName = "JOHN"
	if identity.ConsumerID(sample()) != identity.ConsumerID(upper) {
		t.Fatal("id must be case-insensitive over field values")
	}

	other := sample()
	other.Phone = "5559999999"
	if identity.ConsumerID(sample()) == identity.ConsumerID(other) {
		t.Fatal("different fields must produce a different id")
	}
}

func TestConsumerIDIgnoresRecordID(t *testing.T) {
	a := sample()
	b := sample()
	b.RecordID = "42"
	if identity.ConsumerID(a) != identity.ConsumerID(b) {
		t.Fatal("record id must not contribute to the consumer id")
	}
}

func TestKeyQualifiedByCollection(t *testing.T) {
	a := sample()
	b := sample()
	b.Source = record.CollectionB
	if identity.Key(a) == identity.Key(b) {
		t.Fatal("records with the same id in different collections must key differently")
	}
	if identity.Key(a) != "A:1" {
		t.Fatalf("unexpected key: %q", identity.Key(a))
	}
}

func TestMapGetOrCreateStable(t *testing.T) {
	m := identity.NewMap()
	first := m.GetOrCreate(sample())

	changed := sample()
	changed.Phone = "5550000000"
	// Same record key keeps its assignment even when fields drift.
	second := m.GetOrCreate(changed)
	if first != second {
		t.Fatalf("existing assignment replaced: %q vs %q", first, second)
	}
}

func TestMapSnapshotRestore(t *testing.T) {
	m := identity.NewMap()
	id := m.GetOrCreate(sample())

	snapshot := m.Snapshot()
	if snapshot["A:1"] != id {
		t.Fatalf("snapshot missing assignment: %v", snapshot)
	}

	restored := identity.NewMap()
	restored.Restore(snapshot)
	got, ok := restored.Lookup("A:1")
	if !ok || got != id {
		t.Fatalf("restore lost assignment: %q %t", got, ok)
	}
}

func TestMapRestoreKeepsExisting(t *testing.T) {
	m := identity.NewMap()
	existing := m.GetOrCreate(sample())

	m.Restore(map[string]string{"A:1": "ffffffffffff"})
	got, _ := m.Lookup("A:1")
	if got != existing {
		t.Fatalf("restore overwrote live assignment: %q", got)
	}
}
