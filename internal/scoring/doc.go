// Package scoring combines the four field similarities into one weighted
// total score per candidate pair and records every evaluation on the audit
// trail, independent of the match decision.
package scoring
