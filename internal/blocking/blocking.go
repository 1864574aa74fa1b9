package blocking

import (
	"sort"
	"strings"

	"crosswalk/internal/record"
)

// Block is one postal-code partition with members from both collections.
// Only records inside the same block are ever compared.
type Block struct {
	Zip      string
	RecordsA []record.Record
	RecordsB []record.Record
}

// Pairs reports the number of candidate pairs the block will generate.
func (b Block) Pairs() int {
	return len(b.RecordsA) * len(b.RecordsB)
}

// Partition groups both collections by postal code and returns one block per
// code present in both, ordered by code ascending for deterministic
// evaluation. Records within a block keep their load order.
//
// Records without a postal code are excluded from blocking entirely: they
// generate no candidates and surface later as unmatched records. Codes
// present in only one collection likewise generate no candidates; a postal
// code typo therefore produces a false negative rather than a bad merge.
func Partition(recordsA, recordsB []record.Record) []Block {
	groupsA := groupByZip(recordsA)
	groupsB := groupByZip(recordsB)

	zips := make([]string, 0, len(groupsA))
	for zip := range groupsA {
		if _, ok := groupsB[zip]; ok {
			zips = append(zips, zip)
		}
	}
	sort.Strings(zips)

	blocks := make([]Block, 0, len(zips))
	for _, zip := range zips {
		blocks = append(blocks, Block{
			Zip:      zip,
			RecordsA: groupsA[zip],
			RecordsB: groupsB[zip],
		})
	}
	return blocks
}

func groupByZip(records []record.Record) map[string][]record.Record {
	groups := make(map[string][]record.Record)
	for _, rec := range records {
		zip := strings.TrimSpace(rec.Zip)
		if zip == "" {
			continue
		}
		groups[zip] = append(groups[zip], rec)
	}
	return groups
}
