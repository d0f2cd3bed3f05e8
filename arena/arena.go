package arena

import (
	"fmt"
	"math"
	"unsafe"
)

// Ref identifies a slot within its owning arena. A Ref is only meaningful
// together with the arena that issued it.
type Ref int32

// NilRef marks the absence of a slot, e.g. the end of a linked chain.
const NilRef Ref = -1

// maxSlots bounds capacity so every slot is addressable by a Ref.
const maxSlots = math.MaxInt32

// Arena is a fixed-capacity bump allocator for records of shape T.
// Not goroutine-safe.
type Arena[T any] struct {
	slots    []T
	cursor   int
	released bool
}

// New reserves a backing block for exactly capacity records of shape T.
// A capacity of zero is legal: the arena exists but every Alloc fails with
// ErrOutOfCapacity. A negative capacity yields ErrInvalidCapacity, and a
// capacity whose byte footprint cannot be represented yields ErrAllocation.
func New[T any](capacity int) (*Arena[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if capacity > maxSlots {
		return nil, fmt.Errorf("%w: %d slots exceed the addressable maximum %d", ErrAllocation, capacity, maxSlots)
	}
	if size := recordSize[T](); size > 0 && capacity > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d slots of %d bytes overflow", ErrAllocation, capacity, size)
	}
	return &Arena[T]{slots: make([]T, capacity)}, nil
}

// Alloc advances the cursor by one slot and returns a Ref to it. The slot
// has never been handed out before and will never be handed out again. Its
// contents are whatever they were at reservation time; Alloc does not touch
// them, initialization is the caller's job.
//
// A failed Alloc has no side effect: the cursor does not move.
func (a *Arena[T]) Alloc() (Ref, error) {
	if a.released {
		return NilRef, ErrReleased
	}
	if a.cursor >= len(a.slots) {
		return NilRef, fmt.Errorf("%w: %d slots in use", ErrOutOfCapacity, a.cursor)
	}
	ref := Ref(a.cursor)
	a.cursor++
	return ref, nil
}

// Get resolves a Ref to the record it names. The pointer stays valid until
// Release. Get panics on NilRef, on a Ref the arena never issued, and after
// Release — all three are contract violations, not runtime conditions.
func (a *Arena[T]) Get(ref Ref) *T {
	if a.released {
		panic("arena: Get after Release")
	}
	if ref < 0 || int(ref) >= a.cursor {
		panic(fmt.Sprintf("arena: Get of invalid ref %d (allocated %d)", ref, a.cursor))
	}
	return &a.slots[ref]
}

// Release drops the backing block in a single operation, invalidating every
// slot the arena ever handed out. Calling Release again is a no-op.
func (a *Arena[T]) Release() {
	a.slots = nil
	a.released = true
}

// Released reports whether Release has been called.
func (a *Arena[T]) Released() bool {
	return a.released
}

// Len returns the number of slots allocated so far.
func (a *Arena[T]) Len() int {
	return a.cursor
}

// Cap returns the fixed slot capacity chosen at construction.
// It reports 0 after Release.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Remaining returns the number of slots still available.
// It reports 0 after Release.
func (a *Arena[T]) Remaining() int {
	if a.released {
		return 0
	}
	return len(a.slots) - a.cursor
}

// Footprint returns the byte size of the backing block an arena of the given
// capacity would reserve for records of shape T. It lets callers charge a
// memory budget before construction.
func Footprint[T any](capacity int) int64 {
	if capacity <= 0 {
		return 0
	}
	return int64(capacity) * int64(recordSize[T]())
}

func recordSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
