package arena

import "errors"

var (
	// ErrOutOfCapacity is returned by Alloc when the arena is exhausted.
	// The arena is left unmodified; the caller may build a larger arena and
	// migrate, or reject the input. The arena never grows on its own.
	ErrOutOfCapacity = errors.New("arena: out of capacity")

	// ErrReleased is returned by Alloc after Release has been called.
	ErrReleased = errors.New("arena: use after release")

	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = errors.New("arena: capacity must be non-negative")

	// ErrAllocation is returned by New when the backing block cannot be
	// reserved, e.g. the byte footprint of the requested capacity does not
	// fit the address space or exceeds a configured memory budget.
	ErrAllocation = errors.New("arena: cannot reserve backing block")
)
