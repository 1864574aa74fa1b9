// Package similarity computes per-field fuzzy similarity scores in [0,1].
// Name comparison expands both sides through nickname, misspelling, and
// spelling-substitution variation sets; addresses, emails, and phones use
// weighted component comparison over their parsed parts. The string
// primitive is pluggable; the default is a Levenshtein edit-distance ratio.
package similarity
