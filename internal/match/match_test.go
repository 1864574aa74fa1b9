package match_test

import (
	"testing"

	"crosswalk/internal/match"
	"crosswalk/internal/record"
	"crosswalk/internal/scoring"
)

func pair(aID, bID string, total float64, seq int) scoring.PairScore {
	return scoring.PairScore{
		A:         record.Record{RecordID: aID, Source: record.CollectionA},
		B:         record.Record{RecordID: bID, Source: record.CollectionB},
		Breakdown: scoring.Breakdown{TotalScore: total},
		Seq:       seq,
	}
}

func TestDecideThreshold(t *testing.T) {
	pairs := []scoring.PairScore{
		pair("a1", "b1", 0.69, 0),
		pair("a1", "b2", 0.70, 1),
		pair("a2", "b3", 0.95, 2),
	}

	decision := match.Decide(pairs, 0.70)
	if decision.MatchCount() != 2 {
		t.Fatalf("expected 2 matches, got %d", decision.MatchCount())
	}
	if _, claimed := decision.ClaimedB["B:b1"]; claimed {
		t.Fatal("below-threshold pair must not claim its B record")
	}
}

func TestDecideOneAnchorManyMatches(t *testing.T) {
	pairs := []scoring.PairScore{
		pair("a1", "b1", 0.80, 0),
		pair("a1", "b2", 0.90, 1),
	}

	decision := match.Decide(pairs, 0.70)
	if len(decision.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(decision.Groups))
	}
	matches := decision.Groups[0].Matches
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches in group, got %d", len(matches))
	}
	if matches[0].B.RecordID != "b2" || matches[0].Rank != 1 {
		t.Fatalf("expected b2 ranked first, got %s rank %d", matches[0].B.RecordID, matches[0].Rank)
	}
	if matches[1].B.RecordID != "b1" || matches[1].Rank != 2 {
		t.Fatalf("expected b1 ranked second, got %s rank %d", matches[1].B.RecordID, matches[1].Rank)
	}
	for _, m := range matches {
		if m.MatchCount != 2 {
			t.Fatalf("expected match count 2, got %d", m.MatchCount)
		}
	}
	if decision.MultiMatchCount() != 2 {
		t.Fatalf("expected 2 multi-match pairs, got %d", decision.MultiMatchCount())
	}
}

func TestDecideExclusiveClaim(t *testing.T) {
	// Both anchors cross the threshold against the same B record; the
	// higher score claims it.
	pairs := []scoring.PairScore{
		pair("a1", "b1", 0.75, 0),
		pair("a2", "b1", 0.90, 1),
	}

	decision := match.Decide(pairs, 0.70)
	if decision.MatchCount() != 1 {
		t.Fatalf("expected 1 match after exclusive claim, got %d", decision.MatchCount())
	}
	if decision.Groups[0].Anchor.RecordID != "a2" {
		t.Fatalf("expected a2 to claim b1, got %s", decision.Groups[0].Anchor.RecordID)
	}
}

func TestDecideTieBreaksByEvaluationOrder(t *testing.T) {
	pairs := []scoring.PairScore{
		pair("a1", "b1", 0.80, 0),
		pair("a2", "b1", 0.80, 1),
	}

	decision := match.Decide(pairs, 0.70)
	if decision.Groups[0].Anchor.RecordID != "a1" {
		t.Fatalf("tie should go to the earlier evaluation, got %s", decision.Groups[0].Anchor.RecordID)
	}
}

func TestDecideGroupsInAnchorOrder(t *testing.T) {
	// a2's pair scores higher, but groups are presented in evaluation order.
	pairs := []scoring.PairScore{
		pair("a1", "b1", 0.75, 0),
		pair("a2", "b2", 0.95, 1),
	}

	decision := match.Decide(pairs, 0.70)
	if len(decision.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(decision.Groups))
	}
	if decision.Groups[0].Anchor.RecordID != "a1" || decision.Groups[1].Anchor.RecordID != "a2" {
		t.Fatalf("groups out of anchor order: %s, %s",
			decision.Groups[0].Anchor.RecordID, decision.Groups[1].Anchor.RecordID)
	}
}

func TestDecideNoMatches(t *testing.T) {
	decision := match.Decide([]scoring.PairScore{pair("a1", "b1", 0.2, 0)}, 0.70)
	if len(decision.Groups) != 0 || decision.MatchCount() != 0 {
		t.Fatalf("expected empty decision, got %+v", decision)
	}
}
