package merge

import (
	"sort"
	"strings"

	"crosswalk/internal/identity"
	"crosswalk/internal/match"
	"crosswalk/internal/record"
)

// Merger combines match groups into resolved records, consulting the
// identity map so every record in a group shares the anchor's consumer id.
type Merger struct {
	ids *identity.Map
}

// NewMerger builds a merger over the given identity map.
func NewMerger(ids *identity.Map) *Merger {
	if ids == nil {
		ids = identity.NewMap()
	}
	return &Merger{ids: ids}
}

// Group merges an anchor and its matched B-records into one resolved record.
//
// The merged record starts from the anchor's field values; anchor fields are
// never overwritten once non-empty. B-records are consulted in ascending
// record-id order, and each empty field takes the first non-empty value a
// B-record supplies. The identity is derived from the anchor before any
// field completion, so filling fields can never shift the consumer id.
func (m *Merger) Group(group match.Group) record.ResolvedRecord {
	consumerID := m.ids.GetOrCreate(group.Anchor)

	merged := record.FromRecord(group.Anchor)
	merged.ConsumerID = consumerID
	merged.Source = record.OriginMerged

	sorted := make([]match.Result, len(group.Matches))
	copy(sorted, group.Matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].B.RecordID < sorted[j].B.RecordID
	})

	bIDs := make([]string, 0, len(sorted))
	best := 0.0
	for _, res := range sorted {
		m.ids.Assign(res.B, consumerID)
		bIDs = append(bIDs, res.B.RecordID)
		if res.Confidence > best {
			best = res.Confidence
		}
		for _, field := range record.MergeFields() {
			if merged.FieldValue(field) == "" {
				if value := res.B.Field(field); value != "" {
					merged.SetField(field, value)
				}
			}
		}
	}
	merged.ConfidenceScore = best
	merged.OriginalIDs = strings.Join(append([]string{group.Anchor.RecordID}, bIDs...), "_")
	return merged
}

// Single passes an unmatched record through as a resolved record with full
// confidence.
func (m *Merger) Single(rec record.Record) record.ResolvedRecord {
	resolved := record.FromRecord(rec)
	resolved.ConsumerID = m.ids.GetOrCreate(rec)
	resolved.ConfidenceScore = 1.0
	resolved.Source = record.OriginSingle
	resolved.OriginalIDs = rec.RecordID
	return resolved
}
