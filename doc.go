// Package arenalist provides an append-only sequence backed by a
// fixed-capacity arena allocator.
//
// A Sequence reserves all of its node storage up front, appends in O(1) with
// no per-node bookkeeping, and tears the whole allocation down in a single
// Close. This trades flexibility (no removal, no growth) for a fully
// predictable memory footprint and zero garbage-collector pressure per
// append, which suits event buffers, audit trails, and other know-your-bound
// append-only workloads.
//
// # Quick Start
//
//	seq, err := arenalist.New[string](1024)
//	if err != nil {
//	    return err
//	}
//	defer seq.Close()
//
//	if err := seq.Append("hello"); err != nil {
//	    return err // arenalist.ErrOutOfCapacity once full
//	}
//	for v := range seq.Values() {
//	    fmt.Println(v)
//	}
//
// # Capacity
//
// Capacity is chosen at construction and never changes. When the sequence is
// full, Append returns ErrOutOfCapacity and the sequence is left exactly as
// it was; deciding whether to build a larger sequence and migrate, or to
// reject the input, is the caller's call. The lower-level building blocks
// live in the arena and list subpackages for callers that want to manage the
// arena themselves.
//
// # Snapshots
//
// Snapshot writes the sequence's values to any io.Writer in a
// self-describing binary format (optionally zstd- or lz4-compressed), and
// Restore rebuilds a sequence from one:
//
//	var buf bytes.Buffer
//	_ = seq.Snapshot(ctx, &buf)
//	restored, _ := arenalist.Restore[string](ctx, &buf)
//
// # Budgets and Observability
//
// An optional resource.Controller caps the total arena memory the process
// may reserve and rate-limits snapshot IO. Logging uses log/slog through a
// small Logger wrapper, and a MetricsCollector interface exposes operation
// counters for monitoring integration.
//
// # Thread Safety
//
// A Sequence is single-owner: Append, Snapshot, and Close must be serialized
// by the caller. Traversals are read-only and may overlap each other, but
// not a concurrent Append or Close.
package arenalist
