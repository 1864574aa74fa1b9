package vocab

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Tables bundles the linguistic lookup data the similarity functions depend
// on. Tables are built once at construction time and read-only afterwards,
// so they are safe for concurrent use.
type Tables struct {
	nicknames    map[string][]string // nickname -> canonical names
	canonical    map[string][]string // canonical name -> nicknames
	misspellings map[string][]string
	states       map[string]string
	suffixes     map[string]string
}

// fileTables mirrors the TOML override file layout.
type fileTables struct {
	Nicknames      map[string][]string `toml:"nicknames"`
	Misspellings   map[string][]string `toml:"misspellings"`
	States         map[string]string   `toml:"states"`
	StreetSuffixes map[string]string   `toml:"street_suffixes"`
}

// Default returns tables populated with the built-in US English vocabulary.
func Default() *Tables {
	return build(defaultNicknames, defaultMisspellings, defaultStates, defaultSuffixes)
}

// LoadFile returns the default tables with entries from a TOML override file
// merged on top. Override entries replace default entries with the same key.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var overrides fileTables
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}

	nicknames := mergeLists(defaultNicknames, overrides.Nicknames)
	misspellings := mergeLists(defaultMisspellings, overrides.Misspellings)
	states := mergeValues(defaultStates, overrides.States)
	suffixes := mergeValues(defaultSuffixes, overrides.StreetSuffixes)
	return build(nicknames, misspellings, states, suffixes), nil
}

func build(nicknames, misspellings map[string][]string, states, suffixes map[string]string) *Tables {
	t := &Tables{
		nicknames:    make(map[string][]string, len(nicknames)),
		canonical:    make(map[string][]string),
		misspellings: make(map[string][]string, len(misspellings)),
		states:       make(map[string]string, len(states)),
		suffixes:     make(map[string]string, len(suffixes)),
	}
	for nickname, fullNames := range nicknames {
		key := strings.ToLower(strings.TrimSpace(nickname))
		for _, full := range fullNames {
			full = strings.ToLower(strings.TrimSpace(full))
			if full == "" {
				continue
			}
			t.nicknames[key] = append(t.nicknames[key], full)
			t.canonical[full] = append(t.canonical[full], key)
		}
	}
	for key, list := range t.nicknames {
		t.nicknames[key] = dedupe(list)
	}
	for key, list := range t.canonical {
		t.canonical[key] = dedupe(list)
	}
	for name, variants := range misspellings {
		key := strings.ToLower(strings.TrimSpace(name))
		cleaned := make([]string, 0, len(variants))
		for _, v := range variants {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				cleaned = append(cleaned, v)
			}
		}
		t.misspellings[key] = dedupe(cleaned)
	}
	for key, value := range states {
		t.states[strings.ToLower(strings.TrimSpace(key))] = value
	}
	for key, value := range suffixes {
		t.suffixes[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return t
}

// NameAliases returns the bidirectional nickname expansion for a normalized
// name: canonical forms when the name is a nickname, nicknames when the name
// is canonical, plus sibling nicknames of shared canonical forms.
func (t *Tables) NameAliases(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	var aliases []string
	if fullNames, ok := t.nicknames[name]; ok {
		aliases = append(aliases, fullNames...)
		for _, full := range fullNames {
			aliases = append(aliases, t.canonical[full]...)
		}
	}
	if nicknames, ok := t.canonical[name]; ok {
		aliases = append(aliases, nicknames...)
	}
	out := aliases[:0]
	for _, alias := range dedupe(aliases) {
		if alias != name {
			out = append(out, alias)
		}
	}
	return out
}

// Misspellings returns the curated misspelling variants for a normalized name.
func (t *Tables) Misspellings(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	variants := t.misspellings[name]
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// CanonicalState maps a state name or abbreviation to its canonical
// two-letter form. Unknown values are returned unchanged.
func (t *Tables) CanonicalState(value string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if mapped, ok := t.states[key]; ok {
		return mapped
	}
	return strings.TrimSpace(value)
}

// CanonicalSuffix maps a street-suffix word to its canonical abbreviation.
func (t *Tables) CanonicalSuffix(word string) (string, bool) {
	mapped, ok := t.suffixes[strings.ToLower(word)]
	return mapped, ok
}

func mergeLists(base, overrides map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base)+len(overrides))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return merged
}

func mergeValues(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return merged
}

func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
