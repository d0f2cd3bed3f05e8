// Package list implements an append-only singly-linked sequence whose nodes
// live in a fixed-capacity arena.
//
// A List holds only head/tail refs into a caller-supplied
// arena.Arena[Node[V]]; the arena is the sole owner of node storage. Add is
// O(1), traversal is a lazy forward walk in insertion order, and there is no
// removal: individual nodes are never freed, the arena's Release is the only
// deallocation event.
//
//	a, _ := arena.New[list.Node[int]](64)
//	defer a.Release()
//
//	l := list.New(a)
//	_ = l.Add(10)
//	for v := range l.Values() {
//	    fmt.Println(v)
//	}
//
// The list's lifetime must not exceed its arena's. Like the arena, a List is
// single-owner: Add must not run concurrently with anything else, though any
// number of traversals may run alongside each other.
package list
