// Package normalize canonicalizes the four comparable field families (names,
// addresses, emails, phones) ahead of similarity scoring. Malformed emails
// and phones normalize to the empty string so comparisons degrade to the
// remaining fields instead of failing.
package normalize
