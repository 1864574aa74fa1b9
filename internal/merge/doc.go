// Package merge combines accepted match groups into single deduplicated
// records using first-writer-wins field completion seeded from the anchor,
// and passes unmatched records through unchanged.
package merge
