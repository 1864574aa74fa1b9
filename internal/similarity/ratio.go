package similarity

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Func is the pluggable string-similarity primitive: it maps two strings to
// a score in [0,1], where 1 means identical. Implementations must be
// symmetric and reflexive.
type Func func(a, b string) float64

// Ratio is the default primitive: an edit-distance ratio derived from the
// Levenshtein distance over runes.
func Ratio(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	distance := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 1 - float64(distance)/float64(longest)
}

// tokenSort rewrites a string with its whitespace tokens sorted, making the
// wrapped primitive order-insensitive ("doe john" scores 1.0 against
// "john doe").
func tokenSort(value string) string {
	tokens := strings.Fields(value)
	if len(tokens) < 2 {
		return strings.TrimSpace(value)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// TokenSortRatio applies the primitive to token-sorted forms of both inputs.
func TokenSortRatio(sim Func, a, b string) float64 {
	return sim(tokenSort(a), tokenSort(b))
}
