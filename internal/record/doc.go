// Package record defines the value types flowing through resolution: source
// records tagged by collection, resolved output records, and the CSV codec
// used to load and persist them.
package record
