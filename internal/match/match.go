package match

import (
	"sort"

	"crosswalk/internal/identity"
	"crosswalk/internal/record"
	"crosswalk/internal/scoring"
)

// Result is one accepted candidate pair within an anchor's match group.
type Result struct {
	B          record.Record
	Breakdown  scoring.Breakdown
	Confidence float64
	Rank       int
	MatchCount int

	seq int // evaluation order of the originating pair
}

// Group collects every B-record matched to one anchor A-record, ranked by
// confidence descending.
type Group struct {
	Anchor  record.Record
	Matches []Result
}

// Decision is the outcome of the match step: the accepted groups plus the
// set of claimed B-record keys, which the merge step uses to find unmatched
// B-records.
type Decision struct {
	Groups   []Group
	ClaimedB map[string]struct{}
}

// MatchCount returns the total number of accepted pairs across all groups.
func (d Decision) MatchCount() int {
	count := 0
	for _, group := range d.Groups {
		count += len(group.Matches)
	}
	return count
}

// MultiMatchCount returns the number of accepted pairs belonging to groups
// with more than one match.
func (d Decision) MultiMatchCount() int {
	count := 0
	for _, group := range d.Groups {
		if len(group.Matches) > 1 {
			count += len(group.Matches)
		}
	}
	return count
}

// Decide applies the acceptance threshold and groups retained pairs by their
// A-record.
//
// B-records are claimed exclusively: accepted pairs are processed in
// descending total score (ties broken by evaluation order), and once a
// B-record joins a group it is withheld from every other anchor. A B-record
// therefore contributes to exactly one merge group, claimed by its globally
// best-scoring match.
func Decide(pairs []scoring.PairScore, threshold float64) Decision {
	accepted := make([]scoring.PairScore, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Breakdown.TotalScore >= threshold {
			accepted = append(accepted, pair)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].Breakdown.TotalScore != accepted[j].Breakdown.TotalScore {
			return accepted[i].Breakdown.TotalScore > accepted[j].Breakdown.TotalScore
		}
		return accepted[i].Seq < accepted[j].Seq
	})

	claimed := make(map[string]struct{})
	groupIndex := make(map[string]int)
	var groups []Group
	for _, pair := range accepted {
		bKey := identity.Key(pair.B)
		if _, taken := claimed[bKey]; taken {
			continue
		}
		claimed[bKey] = struct{}{}

		aKey := identity.Key(pair.A)
		idx, ok := groupIndex[aKey]
		if !ok {
			idx = len(groups)
			groupIndex[aKey] = idx
			groups = append(groups, Group{Anchor: pair.A})
		}
		groups[idx].Matches = append(groups[idx].Matches, Result{
			B:          pair.B,
			Breakdown:  pair.Breakdown,
			Confidence: pair.Breakdown.TotalScore,
			seq:        pair.Seq,
		})
	}

	// Matches within a group arrive already sorted by descending score
	// (stable), so ranking is positional.
	for g := range groups {
		matches := groups[g].Matches
		for i := range matches {
			matches[i].Rank = i + 1
			matches[i].MatchCount = len(matches)
		}
	}

	// Present groups in anchor load order for deterministic output.
	sort.SliceStable(groups, func(i, j int) bool {
		return anchorSeq(groups[i]) < anchorSeq(groups[j])
	})

	return Decision{Groups: groups, ClaimedB: claimed}
}

// anchorSeq orders groups by the lowest evaluation sequence among their
// matches, which tracks anchor evaluation order within the run.
func anchorSeq(g Group) int {
	best := int(^uint(0) >> 1)
	for _, m := range g.Matches {
		if m.seq < best {
			best = m.seq
		}
	}
	return best
}
