package similarity

import (
	"strings"

	"crosswalk/internal/normalize"
)

// Email component weights: a shared domain is stronger evidence than a
// similar local part.
const (
	emailLocalWeight  = 0.3
	emailDomainWeight = 0.7
)

// Email scores two email addresses. Values failing normalization score 0;
// equal normalized addresses score 1.0; otherwise the local parts are
// compared with the primitive and the domains by exact equality.
func (s *Scorer) Email(a, b string) float64 {
	normA := normalize.Email(a)
	normB := normalize.Email(b)
	if normA == "" || normB == "" {
		return 0
	}
	if normA == normB {
		return 1
	}

	localA, domainA, _ := strings.Cut(normA, "@")
	localB, domainB, _ := strings.Cut(normB, "@")

	localScore := s.ratio(localA, localB)
	domainScore := 0.0
	if domainA == domainB {
		domainScore = 1.0
	}
	return emailLocalWeight*localScore + emailDomainWeight*domainScore
}

// Phone scores two phone numbers on their canonical 10-digit forms. Either
// side normalizing to empty scores 0.
func (s *Scorer) Phone(a, b string) float64 {
	normA := normalize.Phone(a)
	normB := normalize.Phone(b)
	if normA == "" || normB == "" {
		return 0
	}
	if normA == normB {
		return 1
	}
	return s.ratio(normA, normB)
}
