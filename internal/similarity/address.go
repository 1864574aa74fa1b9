package similarity

import "crosswalk/internal/normalize"

// Component weights for address comparison. Street carries the most signal.
const (
	streetWeight = 0.6
	cityWeight   = 0.3
	stateWeight  = 0.1
)

// Address scores two composed "street, city, state" strings. Identical
// normalized forms score 1.0; otherwise the street and city are compared
// with the primitive and the state by exact equality after abbreviation
// mapping.
func (s *Scorer) Address(a, b string) float64 {
	normA := normalize.Address(a, s.tables)
	normB := normalize.Address(b, s.tables)
	if normA == "" || normB == "" {
		return 0
	}
	if normA == normB {
		return 1
	}

	parsedA := normalize.ParseAddress(a, s.tables)
	parsedB := normalize.ParseAddress(b, s.tables)

	streetScore := s.ratio(normalize.Address(parsedA.Street, s.tables), normalize.Address(parsedB.Street, s.tables))
	cityScore := s.ratio(normalize.Name(parsedA.City), normalize.Name(parsedB.City))
	stateScore := 0.0
	if parsedA.State != "" && parsedA.State == parsedB.State {
		stateScore = 1.0
	}

	return streetWeight*streetScore + cityWeight*cityScore + stateWeight*stateScore
}
