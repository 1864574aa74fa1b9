// Package resolver orchestrates one resolution run: blocking, scoring,
// match decision, and merging, producing the resolved collection, the audit
// trail, the identity map, and run statistics.
package resolver
