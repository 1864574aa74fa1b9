package similarity

import (
	"strings"

	"crosswalk/internal/normalize"
)

// substitutions maps character sequences to their common spelling swaps.
// Single- and double-character keys generate the variation set used when
// comparing names.
var substitutions = map[string][]string{
	"a":  {"e", "i", "o", "u"},
	"e":  {"a", "i", "o", "u"},
	"i":  {"a", "e", "o", "u", "y"},
	"o":  {"a", "e", "i", "u"},
	"u":  {"a", "e", "i", "o"},
	"y":  {"i"},
	"ie": {"ei", "y"},
	"ei": {"ie", "y"},
	"ou": {"u"},
	"oo": {"u"},
	"ee": {"ea", "ie"},
	"ea": {"ee", "ie"},
	"ph": {"f"},
	"f":  {"ph"},
	"k":  {"c"},
	"c":  {"k"},
	"s":  {"c", "z"},
	"z":  {"s"},
	"x":  {"ks"},
	"ks": {"x"},
}

// Name scores two personal names. Each side is expanded into a variation set
// (nickname aliases, curated misspellings, and generated spelling variants);
// the score is the maximum order-insensitive primitive similarity across the
// Cartesian product of both sets. Empty input scores 0, even against another
// empty input, so blank names never match each other spuriously.
func (s *Scorer) Name(a, b string) float64 {
	a = normalize.Name(a)
	b = normalize.Name(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	variantsA := s.nameVariants(a)
	variantsB := s.nameVariants(b)

	best := 0.0
	for _, va := range variantsA {
		for _, vb := range variantsB {
			if score := TokenSortRatio(s.ratio, va, vb); score > best {
				best = score
				if best == 1 {
					return 1
				}
			}
		}
	}
	return best
}

// nameVariants expands a normalized name into its variation set. Nickname
// and misspelling lookups apply per token so "bob smith" picks up
// "robert smith"; spelling substitutions apply across the whole string.
func (s *Scorer) nameVariants(name string) []string {
	set := map[string]struct{}{name: {}}

	tokens := strings.Fields(name)
	for i, token := range tokens {
		for _, alias := range s.tables.NameAliases(token) {
			set[replaceToken(tokens, i, alias)] = struct{}{}
		}
		for _, variant := range s.tables.Misspellings(token) {
			set[replaceToken(tokens, i, variant)] = struct{}{}
		}
	}

	for variant := range spellingVariants(name) {
		set[variant] = struct{}{}
	}

	variants := make([]string, 0, len(set))
	for variant := range set {
		variants = append(variants, variant)
	}
	return variants
}

func replaceToken(tokens []string, index int, value string) string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	out[index] = value
	return strings.Join(out, " ")
}

// spellingVariants generates single- and double-character substitution
// variants of a name.
func spellingVariants(name string) map[string]struct{} {
	variants := make(map[string]struct{})
	for i := range name {
		if replacements, ok := substitutions[name[i:i+1]]; ok {
			for _, r := range replacements {
				variants[name[:i]+r+name[i+1:]] = struct{}{}
			}
		}
		if i < len(name)-1 {
			if replacements, ok := substitutions[name[i:i+2]]; ok {
				for _, r := range replacements {
					variants[name[:i]+r+name[i+2:]] = struct{}{}
				}
			}
		}
	}
	return variants
}
