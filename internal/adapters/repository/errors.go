package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	// ErrDataIntegrity marks a construction-time invariant violation. A failed
	// Build must not be used; there is no partially built catalog.
	ErrDataIntegrity = errors.New("catalog data integrity violation")

	// ErrNotFound marks lookups of ids absent from the catalog.
	ErrNotFound = errors.New("player not found")
)
