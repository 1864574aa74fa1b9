// Package logging assembles the structured slog loggers used across
// Crosswalk.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. The console handler promotes a component attribute into
// the message prefix so pipeline stages read naturally in terminal output.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits log lines with the same shape.
package logging
