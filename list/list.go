package list

import (
	"fmt"
	"iter"

	"github.com/veloq/arenalist/arena"
)

// Node is the fixed record shape a List allocates from its arena: one
// payload plus a ref to the next node in the same arena. Nodes are never
// moved or resized after creation.
type Node[V any] struct {
	value V
	next  arena.Ref
}

// List is an append-only sequence of values backed by a caller-supplied
// arena. The zero value is not usable; use New.
type List[V any] struct {
	arena *arena.Arena[Node[V]]
	head  arena.Ref
	tail  arena.Ref
	count int
}

// New binds a list to the arena that will hold its nodes. The list does not
// own the arena and never releases it. Panics if a is nil.
func New[V any](a *arena.Arena[Node[V]]) *List[V] {
	if a == nil {
		panic("list: nil arena")
	}
	return &List[V]{
		arena: a,
		head:  arena.NilRef,
		tail:  arena.NilRef,
	}
}

// Add appends v in O(1). If the arena is exhausted, Add returns
// arena.ErrOutOfCapacity and the list is unchanged — the caller may migrate
// to a larger arena or reject the input; the list never retries internally.
func (l *List[V]) Add(v V) error {
	ref, err := l.arena.Alloc()
	if err != nil {
		return err
	}
	n := l.arena.Get(ref)
	n.value = v
	n.next = arena.NilRef

	if l.tail == arena.NilRef {
		l.head = ref
	} else {
		l.arena.Get(l.tail).next = ref
	}
	l.tail = ref
	l.count++
	return nil
}

// AddAll appends every value or none: the remaining capacity is checked up
// front, so a single exhaustion check covers the whole batch and a failed
// call leaves the list unchanged.
func (l *List[V]) AddAll(values ...V) error {
	if l.arena.Released() {
		return arena.ErrReleased
	}
	if n := l.arena.Remaining(); len(values) > n {
		return fmt.Errorf("%w: batch of %d exceeds %d remaining slots", arena.ErrOutOfCapacity, len(values), n)
	}
	for _, v := range values {
		if err := l.Add(v); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a lazy forward traversal in insertion order. It allocates
// nothing and never mutates the list; each call starts an independent walk
// from the head, and the consumer may stop pulling at any point.
func (l *List[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for ref := l.head; ref != arena.NilRef; {
			n := l.arena.Get(ref)
			if !yield(n.value) {
				return
			}
			ref = n.next
		}
	}
}

// Len returns the number of values appended so far.
func (l *List[V]) Len() int {
	return l.count
}
