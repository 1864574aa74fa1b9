package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadFile loads one source collection from a delimited file. The first row
// must be a header; column order is free. When the file carries no record_id
// column, positional indexes are assigned, matching the row order.
func ReadFile(path string, source Collection) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read records file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("records file %s: missing header row", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	_, hasRecordID := columns["record_id"]

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := Record{
			RecordID:  cell(row, "record_id"),
			FirstName: cell(row, "first_name"),
			LastName:  cell(row, "last_name"),
			Street:    cell(row, "street"),
			City:      cell(row, "city"),
			State:     cell(row, "state"),
			Zip:       cell(row, "zip"),
			Email:     cell(row, "email"),
			Phone:     cell(row, "phone"),
			Source:    source,
		}
		if !hasRecordID || rec.RecordID == "" {
			rec.RecordID = strconv.Itoa(i)
		}
		records = append(records, rec)
	}
	return records, nil
}

var resolvedHeader = []string{
	"consumer_id", "first_name", "last_name", "street", "city", "state",
	"zip", "email", "phone", "confidence_score", "source", "original_ids",
}

// WriteResolvedFile writes resolved records as CSV. Failures are surfaced
// unmodified to the caller; there is no retry.
func WriteResolvedFile(path string, resolved []ResolvedRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(resolvedHeader); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}
	for _, rec := range resolved {
		row := []string{
			rec.ConsumerID,
			rec.FirstName,
			rec.LastName,
			rec.Street,
			rec.City,
			rec.State,
			rec.Zip,
			rec.Email,
			rec.Phone,
			strconv.FormatFloat(rec.ConfidenceScore, 'f', 4, 64),
			string(rec.Source),
			rec.OriginalIDs,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}
	return nil
}
