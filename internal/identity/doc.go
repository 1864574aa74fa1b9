// Package identity assigns stable, content-derived consumer identifiers.
// The in-memory Map caches per-record assignments for one run; the
// SQLite-backed Store persists them so re-running resolution on updated
// input reproduces prior identifiers for unchanged anchors.
package identity
