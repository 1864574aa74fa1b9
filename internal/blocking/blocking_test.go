package blocking_test

import (
	"testing"

	"crosswalk/internal/blocking"
	"crosswalk/internal/record"
)

func rec(id, zip string) record.Record {
	return record.Record{RecordID: id, Zip: zip}
}

func TestPartitionSharedZipsOnly(t *testing.T) {
	recordsA := []record.Record{rec("1", "12345"), rec("2", "67890"), rec("3", "11111")}
	recordsB := []record.Record{rec("4", "12345"), rec("5", "22222"), rec("6", "67890")}

	blocks := blocking.Partition(recordsA, recordsB)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 shared blocks, got %d", len(blocks))
	}
	if blocks[0].Zip != "12345" || blocks[1].Zip != "67890" {
		t.Fatalf("blocks not sorted by zip: %q, %q", blocks[0].Zip, blocks[1].Zip)
	}
	if blocks[0].Pairs() != 1 {
		t.Fatalf("expected 1 candidate pair in first block, got %d", blocks[0].Pairs())
	}
}

func TestPartitionSkipsMissingZip(t *testing.T) {
	recordsA := []record.Record{rec("1", ""), rec("2", "  "), rec("3", "12345")}
	recordsB := []record.Record{rec("4", "12345"), rec("5", "")}

	blocks := blocking.Partition(recordsA, recordsB)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].RecordsA) != 1 || blocks[0].RecordsA[0].RecordID != "3" {
		t.Fatalf("unexpected A members: %+v", blocks[0].RecordsA)
	}
}

func TestPartitionPreservesLoadOrder(t *testing.T) {
	recordsA := []record.Record{rec("z", "12345"), rec("a", "12345"), rec("m", "12345")}
	recordsB := []record.Record{rec("1", "12345")}

	blocks := blocking.Partition(recordsA, recordsB)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	got := []string{}
	for _, r := range blocks[0].RecordsA {
		got = append(got, r.RecordID)
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("load order not preserved: got %v want %v", got, want)
		}
	}
}

func TestPartitionEmptyInputs(t *testing.T) {
	if blocks := blocking.Partition(nil, nil); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}
