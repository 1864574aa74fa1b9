// Package blocking partitions both input collections by postal code so only
// same-block record pairs are compared, bounding comparison cost well below
// the full cross product.
package blocking
