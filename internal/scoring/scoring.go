package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"crosswalk/internal/audit"
	"crosswalk/internal/blocking"
	"crosswalk/internal/record"
	"crosswalk/internal/similarity"
)

// nearMissScore is the diagnostic cutoff for tracking pairs that almost
// matched.
const nearMissScore = 0.5

// Weights holds the per-field contribution to the total score. Weights must
// be non-negative and sum to 1.0.
type Weights struct {
	Name    float64
	Address float64
	Email   float64
	Phone   float64
}

// DefaultWeights returns the standard field weighting.
func DefaultWeights() Weights {
	return Weights{Name: 0.3, Address: 0.3, Email: 0.2, Phone: 0.2}
}

// Validate checks the weight invariants.
func (w Weights) Validate() error {
	for name, value := range map[string]float64{
		"name": w.Name, "address": w.Address, "email": w.Email, "phone": w.Phone,
	} {
		if value < 0 {
			return fmt.Errorf("field weight %s must be non-negative", name)
		}
	}
	if sum := w.Name + w.Address + w.Email + w.Phone; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("field weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// Breakdown carries the component scores for one candidate pair.
type Breakdown struct {
	NameScore    float64
	AddressScore float64
	EmailScore   float64
	PhoneScore   float64
	TotalScore   float64
}

// PairScore is one evaluated candidate pair. Seq is the pair's position in
// the deterministic evaluation order (blocks ascending by zip, A records in
// load order, B records in load order) and is used as the stable tie-break
// downstream.
type PairScore struct {
	A         record.Record
	B         record.Record
	Breakdown Breakdown
	Seq       int
}

// Summary aggregates counters from one scoring pass.
type Summary struct {
	Comparisons int
	NearMisses  int
}

// Engine scores candidate pairs and feeds the audit trail.
type Engine struct {
	scorer    *similarity.Scorer
	weights   Weights
	threshold float64
	trail     *audit.Trail
	workers   int
}

// NewEngine builds a scoring engine. workers <= 0 selects NumCPU.
func NewEngine(scorer *similarity.Scorer, weights Weights, matchThreshold float64, trail *audit.Trail, workers int) (*Engine, error) {
	if scorer == nil {
		return nil, errors.New("scoring: similarity scorer is required")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if matchThreshold < 0 || matchThreshold > 1 {
		return nil, errors.New("scoring: match threshold must be between 0 and 1")
	}
	if trail == nil {
		trail = audit.NewTrail()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		scorer:    scorer,
		weights:   weights,
		threshold: matchThreshold,
		trail:     trail,
		workers:   workers,
	}, nil
}

// Score evaluates one candidate pair.
func (e *Engine) Score(a, b record.Record) Breakdown {
	bd := Breakdown{
		NameScore:    e.scorer.Name(a.FullName(), b.FullName()),
		AddressScore: e.scorer.Address(a.Address(), b.Address()),
		EmailScore:   e.scorer.Email(a.Email, b.Email),
		PhoneScore:   e.scorer.Phone(a.Phone, b.Phone),
	}
	bd.TotalScore = e.weights.Name*bd.NameScore +
		e.weights.Address*bd.AddressScore +
		e.weights.Email*bd.EmailScore +
		e.weights.Phone*bd.PhoneScore
	return bd
}

// ScoreBlocks evaluates every candidate pair in every block, emitting one
// audit entry per pair regardless of the decision. Blocks are scored in
// parallel; results and audit entries are assembled in block order so the
// output is deterministic for a given input.
func (e *Engine) ScoreBlocks(ctx context.Context, blocks []blocking.Block) ([]PairScore, Summary, error) {
	results := make([]blockResult, len(blocks))
	indexes := make(chan int)

	var wg sync.WaitGroup
	workers := e.workers
	if workers > len(blocks) {
		workers = len(blocks)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.scoreBlock(blocks[i])
			}
		}()
	}

feed:
	for i := range blocks {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	var pairs []PairScore
	var summary Summary
	for _, res := range results {
		for _, pair := range res.pairs {
			pair.Seq = len(pairs)
			pairs = append(pairs, pair)
			summary.Comparisons++
			if pair.Breakdown.TotalScore > nearMissScore && pair.Breakdown.TotalScore < e.threshold {
				summary.NearMisses++
			}
		}
		e.trail.Extend(res.entries)
	}
	return pairs, summary, nil
}

type blockResult struct {
	pairs   []PairScore
	entries []audit.Entry
}

func (e *Engine) scoreBlock(block blocking.Block) blockResult {
	var res blockResult
	res.pairs = make([]PairScore, 0, block.Pairs())
	res.entries = make([]audit.Entry, 0, block.Pairs())
	for _, a := range block.RecordsA {
		for _, b := range block.RecordsB {
			bd := e.Score(a, b)
			res.pairs = append(res.pairs, PairScore{A: a, B: b, Breakdown: bd})
			// entries mirror pairs one-to-one; Seq is stamped during assembly.
			res.entries = append(res.entries, audit.Entry{
				RecordAID:    a.RecordID,
				RecordBID:    b.RecordID,
				NameScore:    bd.NameScore,
				AddressScore: bd.AddressScore,
				EmailScore:   bd.EmailScore,
				PhoneScore:   bd.PhoneScore,
				TotalScore:   bd.TotalScore,
				Matched:      bd.TotalScore >= e.threshold,
			})
		}
	}
	return res
}

// Threshold returns the acceptance threshold the engine tags audits with.
func (e *Engine) Threshold() float64 {
	return e.threshold
}
