// Package match turns scored candidate pairs into ranked match groups: it
// gates on the acceptance threshold, claims each B-record for its single
// best-scoring anchor, and ranks matches within each group by confidence.
package match
