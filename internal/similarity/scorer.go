package similarity

import "crosswalk/internal/vocab"

// Scorer computes per-field similarities using an injected vocabulary and
// string-similarity primitive. A Scorer is immutable after construction and
// safe for concurrent use.
type Scorer struct {
	tables *vocab.Tables
	ratio  Func
}

// NewScorer builds a Scorer. A nil primitive selects the Levenshtein-based
// Ratio; nil tables select the built-in vocabulary.
func NewScorer(tables *vocab.Tables, primitive Func) *Scorer {
	if tables == nil {
		tables = vocab.Default()
	}
	if primitive == nil {
		primitive = Ratio
	}
	return &Scorer{tables: tables, ratio: primitive}
}
