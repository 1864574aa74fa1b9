package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crosswalk/internal/audit"
	"crosswalk/internal/blocking"
	"crosswalk/internal/identity"
	"crosswalk/internal/match"
	"crosswalk/internal/merge"
	"crosswalk/internal/record"
	"crosswalk/internal/scoring"
	"crosswalk/internal/similarity"
	"crosswalk/internal/vocab"
)

var (
	// ErrDuplicateRecordID indicates a record id appears more than once
	// within one source collection. The identity map's per-record caching
	// assumes uniqueness, so loading fails fast.
	ErrDuplicateRecordID = errors.New("duplicate record id")

	// ErrNotLoaded indicates Resolve was called before Load.
	ErrNotLoaded = errors.New("collections not loaded")
)

// DefaultMatchThreshold gates acceptance on the weighted total score.
const DefaultMatchThreshold = 0.70

// Options configures a Resolver. Zero values select defaults.
type Options struct {
	Tables         *vocab.Tables
	Primitive      similarity.Func
	Weights        scoring.Weights
	MatchThreshold float64
	Workers        int
	Logger         *slog.Logger
	Identities     *identity.Map
	Trail          *audit.Trail
}

// Resolver runs the resolution pipeline over two loaded collections.
type Resolver struct {
	engine     *scoring.Engine
	threshold  float64
	trail      *audit.Trail
	identities *identity.Map
	logger     *slog.Logger

	recordsA []record.Record
	recordsB []record.Record
	loaded   bool
}

// New constructs a Resolver from options.
func New(opts Options) (*Resolver, error) {
	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	threshold := opts.MatchThreshold
	if threshold == 0 {
		threshold = DefaultMatchThreshold
	}
	trail := opts.Trail
	if trail == nil {
		trail = audit.NewTrail()
	}
	identities := opts.Identities
	if identities == nil {
		identities = identity.NewMap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	scorer := similarity.NewScorer(opts.Tables, opts.Primitive)
	engine, err := scoring.NewEngine(scorer, weights, threshold, trail, opts.Workers)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		engine:     engine,
		threshold:  threshold,
		trail:      trail,
		identities: identities,
		logger:     logger.With("component", "resolver"),
	}, nil
}

// Identities exposes the identity map for persistence by the caller.
func (r *Resolver) Identities() *identity.Map {
	return r.identities
}

// Load stages both source collections. Records are tagged with their
// collection; a duplicate record id within one collection is a
// data-integrity error.
func (r *Resolver) Load(recordsA, recordsB []record.Record) error {
	if err := checkUnique(recordsA, record.CollectionA); err != nil {
		return err
	}
	if err := checkUnique(recordsB, record.CollectionB); err != nil {
		return err
	}

	r.recordsA = tagSource(recordsA, record.CollectionA)
	r.recordsB = tagSource(recordsB, record.CollectionB)
	r.loaded = true

	r.logger.Info("collections loaded",
		"records_a", len(r.recordsA),
		"records_b", len(r.recordsB))
	return nil
}

// Outcome bundles everything one resolution run produces.
type Outcome struct {
	Resolved   []record.ResolvedRecord
	Audit      []audit.Entry
	Identities map[string]string
	Stats      Stats
}

// Resolve runs blocking, scoring, match decision, and merging over the
// loaded collections. Rankings and output ordering are deterministic for a
// given input regardless of internal parallelism.
func (r *Resolver) Resolve(ctx context.Context) (*Outcome, error) {
	if !r.loaded {
		return nil, ErrNotLoaded
	}
	started := time.Now()
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	blocks := blocking.Partition(r.recordsA, r.recordsB)
	candidates := 0
	for _, block := range blocks {
		candidates += block.Pairs()
	}
	logger.Info("blocking complete", "blocks", len(blocks), "candidate_pairs", candidates)

	pairs, summary, err := r.engine.ScoreBlocks(ctx, blocks)
	if err != nil {
		return nil, fmt.Errorf("score candidate pairs: %w", err)
	}

	decision := match.Decide(pairs, r.threshold)
	logger.Info("match decision complete",
		"comparisons", summary.Comparisons,
		"matches", decision.MatchCount(),
		"groups", len(decision.Groups))

	merger := merge.NewMerger(r.identities)
	resolved := make([]record.ResolvedRecord, 0, len(r.recordsA)+len(r.recordsB))

	matchedAnchors := make(map[string]struct{}, len(decision.Groups))
	for _, group := range decision.Groups {
		matchedAnchors[identity.Key(group.Anchor)] = struct{}{}
		resolved = append(resolved, merger.Group(group))
	}

	unmatchedA := 0
	for _, rec := range r.recordsA {
		if _, ok := matchedAnchors[identity.Key(rec)]; ok {
			continue
		}
		resolved = append(resolved, merger.Single(rec))
		unmatchedA++
	}
	unmatchedB := 0
	for _, rec := range r.recordsB {
		if _, ok := decision.ClaimedB[identity.Key(rec)]; ok {
			continue
		}
		resolved = append(resolved, merger.Single(rec))
		unmatchedB++
	}

	stats := Stats{
		RunID:          runID,
		TotalRecordsA:  len(r.recordsA),
		TotalRecordsB:  len(r.recordsB),
		Comparisons:    summary.Comparisons,
		NearMisses:     summary.NearMisses,
		MatchesFound:   decision.MatchCount(),
		MultiMatches:   decision.MultiMatchCount(),
		UnmatchedA:     unmatchedA,
		UnmatchedB:     unmatchedB,
		ResolvedTotal:  len(resolved),
		MatchThreshold: r.threshold,
		Duration:       time.Since(started),
	}
	if summary.Comparisons > 0 {
		stats.MatchRate = float64(decision.MatchCount()) / float64(summary.Comparisons)
	}

	logger.Info("resolution complete",
		"resolved", stats.ResolvedTotal,
		"unmatched_a", stats.UnmatchedA,
		"unmatched_b", stats.UnmatchedB,
		"duration", stats.Duration)

	return &Outcome{
		Resolved:   resolved,
		Audit:      r.trail.Entries(),
		Identities: r.identities.Snapshot(),
		Stats:      stats,
	}, nil
}

func checkUnique(records []record.Record, source record.Collection) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.RecordID]; ok {
			return fmt.Errorf("%w: %q appears more than once in collection %s", ErrDuplicateRecordID, rec.RecordID, source)
		}
		seen[rec.RecordID] = struct{}{}
	}
	return nil
}

func tagSource(records []record.Record, source record.Collection) []record.Record {
	tagged := make([]record.Record, len(records))
	copy(tagged, records)
	for i := range tagged {
		tagged[i].Source = source
	}
	return tagged
}
