package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"crosswalk/internal/vocab"
)

var (
	punctuationPattern = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	emailPattern       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern    = regexp.MustCompile(`\D`)
)

// foldTransformer strips combining marks after canonical decomposition, so
// accented input compares equal to its ASCII spelling.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold removes diacritics from a string. Input that fails to transform is
// returned unchanged rather than erroring; downstream similarity degrades
// gracefully on the raw form.
func Fold(value string) string {
	folded, _, err := transform.String(foldTransformer, value)
	if err != nil {
		return value
	}
	return folded
}

// Name canonicalizes a personal name: diacritics folded, punctuation
// replaced with spaces, whitespace collapsed, lowercased.
func Name(value string) string {
	value = Fold(value)
	value = punctuationPattern.ReplaceAllString(value, " ")
	value = whitespacePattern.ReplaceAllString(strings.TrimSpace(value), " ")
	return strings.ToLower(value)
}

// Address canonicalizes an address: lowercased, diacritics folded, street
// suffixes mapped through the vocabulary table, punctuation stripped.
func Address(value string, tables *vocab.Tables) string {
	value = strings.ToLower(Fold(value))
	value = whitespacePattern.ReplaceAllString(strings.TrimSpace(value), " ")

	words := strings.Split(value, " ")
	for i, word := range words {
		trimmed := strings.Trim(word, ",.")
		if mapped, ok := tables.CanonicalSuffix(trimmed); ok {
			words[i] = strings.Replace(word, trimmed, mapped, 1)
		}
	}
	value = strings.Join(words, " ")

	value = punctuationPattern.ReplaceAllString(value, " ")
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(value), " ")
}

// Email canonicalizes an email address. Values that do not match the basic
// local@domain.tld shape normalize to the empty string, forcing the email
// similarity to 0 instead of raising.
func Email(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(value) {
		return ""
	}
	return value
}

// Phone canonicalizes a phone number to its digits. US country codes are
// stripped: 11 digits with a leading 1 reduce to 10, anything longer keeps
// the last 10 digits.
func Phone(value string) string {
	digits := nonDigitPattern.ReplaceAllString(value, "")
	switch {
	case len(digits) == 10:
		return digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return digits[1:]
	case len(digits) > 10:
		return digits[len(digits)-10:]
	default:
		return digits
	}
}

// ParsedAddress holds the street/city/state split of a composed address.
type ParsedAddress struct {
	Street string
	City   string
	State  string
}

// ParseAddress splits a composed address on its first comma: the lead is the
// street, the final whitespace-delimited token of the remainder is the state
// (mapped through the state table), and the rest is the city.
func ParseAddress(value string, tables *vocab.Tables) ParsedAddress {
	value = strings.TrimSpace(value)
	if value == "" {
		return ParsedAddress{}
	}

	street, remainder, found := strings.Cut(value, ",")
	if !found {
		return ParsedAddress{Street: strings.TrimSpace(street)}
	}

	remainder = strings.TrimSpace(strings.ReplaceAll(remainder, ",", " "))
	tokens := strings.Fields(remainder)
	if len(tokens) == 0 {
		return ParsedAddress{Street: strings.TrimSpace(street)}
	}
	if len(tokens) == 1 {
		return ParsedAddress{Street: strings.TrimSpace(street), City: tokens[0]}
	}

	state := tables.CanonicalState(tokens[len(tokens)-1])
	city := strings.Join(tokens[:len(tokens)-1], " ")
	return ParsedAddress{
		Street: strings.TrimSpace(street),
		City:   city,
		State:  state,
	}
}
