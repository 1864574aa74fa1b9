// Package audit keeps the append-only trail of every candidate pair the
// scoring engine evaluates, independent of whether the pair was accepted.
package audit
