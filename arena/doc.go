// Package arena implements a fixed-capacity bump allocator for records of a
// single shape.
//
// # Overview
//
// An Arena reserves one contiguous backing block at construction, sized for
// exactly Cap() records, and hands out slots by advancing a cursor. There is
// no per-slot bookkeeping and no per-slot deallocation: Release drops the
// entire block in one operation. This makes allocation O(1), teardown O(1),
// and the memory footprint fully known up front, which suits append-only
// structures with a known or estimated maximum record count.
//
// # Basic Usage
//
//	a, err := arena.New[Record](1024)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	ref, err := a.Alloc()
//	if err != nil {
//	    return err // arena.ErrOutOfCapacity once full
//	}
//	rec := a.Get(ref)
//	rec.Key = "k"
//
// # Refs
//
// Alloc returns a Ref, an index into the arena's backing block, rather than a
// pointer. Refs stored inside records (for example a linked-list "next"
// field) are relations between slots of the same arena, not owning pointers,
// so the arena stays the single owner of all record storage and Release
// cannot be bypassed per record.
//
// # Lifetime
//
// Every slot is valid until Release. After Release, Alloc returns
// ErrReleased and Get panics; dereferencing a previously obtained *T is a
// programmer error the arena cannot detect. Release is idempotent.
//
// # Thread Safety
//
// An Arena is not goroutine-safe. It is designed for a single logical owner;
// callers that share one arena must serialize access externally (not
// recommended — give each owner its own arena).
package arena
