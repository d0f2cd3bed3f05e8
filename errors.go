package arenalist

import "github.com/veloq/arenalist/arena"

// Sentinel errors callers branch on, re-exported from the arena package so
// typical users never import it directly.
var (
	// ErrOutOfCapacity is returned by Append when the sequence is full.
	ErrOutOfCapacity = arena.ErrOutOfCapacity

	// ErrReleased is returned for operations on a closed sequence.
	ErrReleased = arena.ErrReleased

	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = arena.ErrInvalidCapacity

	// ErrAllocation is returned by New when the backing block cannot be
	// reserved, including denial by a configured memory budget.
	ErrAllocation = arena.ErrAllocation
)
