// Package vocab supplies the linguistic lookup tables the similarity
// functions are parameterized on: a bidirectional nickname table, a curated
// misspelling table, state abbreviations, and street-suffix canonicalization.
// Defaults cover US English; each table can be extended or replaced from a
// TOML file so alternate locales can be substituted without code changes.
package vocab
