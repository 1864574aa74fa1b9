package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"crosswalk/internal/record"
)

var inputHeader = []string{
	"record_id", "first_name", "last_name", "street", "city", "state",
	"zip", "email", "phone",
}

// WriteRecordsCSV writes the records as an input CSV file and returns the
// path. Directories are created as needed.
func WriteRecordsCSV(t testing.TB, path string, records []record.Record) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(inputHeader); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, rec := range records {
		row := []string{
			rec.RecordID, rec.FirstName, rec.LastName, rec.Street,
			rec.City, rec.State, rec.Zip, rec.Email, rec.Phone,
		}
		if err := writer.Write(row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
	return path
}

// Consumer builds a fully populated record for tests. Callers override
// individual fields on the returned value as needed.
func Consumer(id string) record.Record {
	return record.Record{
		RecordID:  id,
		FirstName: "John",
		LastName:  "Doe",
		Street:    "123 Main St",
		City:      "Anytown",
		State:     "CA",
		Zip:       "12345",
		Email:     "john.doe@email.com",
		Phone:     "555-123-4567",
	}
}
