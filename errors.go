package pocketcube

import "errors"

// Sentinel errors for the pocketcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("pocketcube: invalid action notation")

	// State invariant violations
	ErrBadPermutation = errors.New("pocketcube: corner positions are not a permutation of 0..7")
	ErrBadOrientation = errors.New("pocketcube: corner orientation out of range 0..2")
)
