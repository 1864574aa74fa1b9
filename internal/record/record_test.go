package record_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"crosswalk/internal/record"
)

func TestFullName(t *testing.T) {
	rec := record.Record{FirstName: "John", LastName: "Doe"}
	if got := rec.FullName(); got != "John Doe" {
		t.Fatalf("FullName = %q", got)
	}
	if got := (record.Record{LastName: "Doe"}).FullName(); got != "Doe" {
		t.Fatalf("FullName with missing first = %q", got)
	}
}

func TestAddressComposition(t *testing.T) {
	rec := record.Record{Street: "123 Main St", City: "Anytown", State: "CA", Zip: "12345"}
	if got := rec.Address(); got != "123 Main St, Anytown, CA" {
		t.Fatalf("Address = %q", got)
	}
}

func TestHasZip(t *testing.T) {
	if (record.Record{Zip: "  "}).HasZip() {
		t.Fatal("whitespace zip should not count")
	}
	if !(record.Record{Zip: "12345"}).HasZip() {
		t.Fatal("expected HasZip true")
	}
}

func TestFieldRoundTrip(t *testing.T) {
	rec := record.Record{
		FirstName: "a", LastName: "b", Street: "c", City: "d",
		State: "e", Zip: "f", Email: "g", Phone: "h",
	}
	for _, field := range record.MergeFields() {
		if rec.Field(field) == "" {
			t.Errorf("Field(%q) returned empty", field)
		}
	}
	if rec.Field("bogus") != "" {
		t.Fatal("unknown field should return empty")
	}

	var resolved record.ResolvedRecord
	for _, field := range record.MergeFields() {
		resolved.SetField(field, rec.Field(field))
	}
	for _, field := range record.MergeFields() {
		if resolved.FieldValue(field) != rec.Field(field) {
			t.Errorf("field %q lost in transfer", field)
		}
	}
}

func TestParseCollection(t *testing.T) {
	if got, ok := record.ParseCollection(" a "); !ok || got != record.CollectionA {
		t.Fatalf("ParseCollection(a) = %q %t", got, ok)
	}
	if _, ok := record.ParseCollection("c"); ok {
		t.Fatal("expected unknown collection to fail")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "record_id,first_name,last_name,street,city,state,zip,email,phone\n" +
		"1,John,Doe,123 Main St,Anytown,CA,12345,john@email.com,555-123-4567\n" +
		"2,Jane,Roe,456 Oak Ave,Anytown,CA,12345,,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	records, err := record.ReadFile(path, record.CollectionA)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RecordID != "1" || records[0].FirstName != "John" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[0].Source != record.CollectionA {
		t.Fatalf("source not tagged: %q", records[0].Source)
	}
	if records[1].Email != "" {
		t.Fatalf("expected empty email, got %q", records[1].Email)
	}
}

func TestReadFileColumnOrderFree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "zip,last_name,first_name,record_id\n" +
		"12345,Doe,John,7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	records, err := record.ReadFile(path, record.CollectionB)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if records[0].RecordID != "7" || records[0].FirstName != "John" || records[0].Zip != "12345" {
		t.Fatalf("header mapping failed: %+v", records[0])
	}
}

func TestReadFileAssignsPositionalIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "first_name,last_name,zip\nJohn,Doe,12345\nJane,Roe,67890\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	records, err := record.ReadFile(path, record.CollectionA)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if records[0].RecordID != "0" || records[1].RecordID != "1" {
		t.Fatalf("positional ids not assigned: %q, %q", records[0].RecordID, records[1].RecordID)
	}
}

func TestReadFileMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if _, err := record.ReadFile(path, record.CollectionA); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestWriteResolvedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolved.csv")
	resolved := []record.ResolvedRecord{{
		ConsumerID:      "abc123def456",
		FirstName:       "John",
		LastName:        "Doe",
		Zip:             "12345",
		ConfidenceScore: 0.875,
		Source:          record.OriginMerged,
		OriginalIDs:     "1_2",
	}}

	if err := record.WriteResolvedFile(path, resolved); err != nil {
		t.Fatalf("WriteResolvedFile: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	row := rows[1]
	if row[0] != "abc123def456" {
		t.Fatalf("unexpected consumer id: %q", row[0])
	}
	if row[9] != "0.8750" {
		t.Fatalf("unexpected score formatting: %q", row[9])
	}
	if row[10] != "MERGED" || row[11] != "1_2" {
		t.Fatalf("unexpected provenance columns: %v", row)
	}
}
