// Package config loads, normalizes, and validates Crosswalk configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates matching thresholds and field
// weights. The Config type centralizes every knob the CLI needs so
// downstream code receives sanitized paths and clear validation errors.
package config
