package arenalist

import (
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/veloq/arenalist/arena"
	"github.com/veloq/arenalist/list"
	"github.com/veloq/arenalist/snapshot"
)

// Sequence is an append-only sequence of values with all node storage
// reserved up front in an owned arena. Obtain one with New or Restore and
// tear it down with Close; Close is the single deallocation event for every
// value ever appended.
//
// Not goroutine-safe: see the package documentation.
type Sequence[V any] struct {
	arena    *arena.Arena[list.Node[V]]
	list     *list.List[V]
	opts     options
	reserved int64
}

// New builds a sequence that can hold exactly capacity values. The arena
// backing block is reserved immediately; if a resource controller is
// configured and its memory budget denies the reservation, New fails with
// ErrAllocation and nothing is reserved.
func New[V any](capacity int, optFns ...Option) (*Sequence[V], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	footprint := arena.Footprint[list.Node[V]](capacity)
	if opts.controller != nil && !opts.controller.TryAcquireMemory(footprint) {
		return nil, fmt.Errorf("%w: memory budget denied %d bytes", ErrAllocation, footprint)
	}

	a, err := arena.New[list.Node[V]](capacity)
	if err != nil {
		if opts.controller != nil {
			opts.controller.ReleaseMemory(footprint)
		}
		return nil, err
	}

	opts.logger.Debug("sequence created", "capacity", capacity, "bytes", footprint)

	return &Sequence[V]{
		arena:    a,
		list:     list.New(a),
		opts:     opts,
		reserved: footprint,
	}, nil
}

// Append adds v at the end in O(1). When the sequence is full it returns
// ErrOutOfCapacity and leaves the sequence untouched; after Close it returns
// ErrReleased.
func (s *Sequence[V]) Append(v V) error {
	start := time.Now()
	err := s.list.Add(v)
	s.opts.metrics.RecordAppend(time.Since(start), err)
	if err != nil {
		s.opts.logger.LogAppend(err)
	}
	return err
}

// AppendAll adds every value or none. A batch larger than the remaining
// capacity fails with ErrOutOfCapacity without appending anything.
func (s *Sequence[V]) AppendAll(values ...V) error {
	start := time.Now()
	err := s.list.AddAll(values...)
	s.opts.metrics.RecordAppendBatch(len(values), time.Since(start), err)
	if err != nil {
		s.opts.logger.LogAppendBatch(len(values), err)
	}
	return err
}

// Values returns a lazy forward traversal in insertion order. Each call is
// an independent, restartable walk; it allocates nothing and never mutates
// the sequence. Traversing after Close panics.
func (s *Sequence[V]) Values() iter.Seq[V] {
	return s.list.Values()
}

// Len returns the number of values appended so far.
func (s *Sequence[V]) Len() int {
	return s.list.Len()
}

// Cap returns the fixed capacity chosen at construction.
func (s *Sequence[V]) Cap() int {
	return s.arena.Cap()
}

// ArenaStats reports the backing arena's memory accounting.
func (s *Sequence[V]) ArenaStats() arena.Stats {
	return s.arena.Stats()
}

// Snapshot writes the sequence's values to w in the snapshot package's
// self-describing format, using the configured codec and compression. The
// sequence must not be mutated while the snapshot is being written.
func (s *Sequence[V]) Snapshot(ctx context.Context, w io.Writer) error {
	if s.arena.Released() {
		return ErrReleased
	}

	start := time.Now()
	count := s.list.Len()
	err := snapshot.Write(ctx, w, count, s.list.Values(), func(o *snapshot.Options) {
		o.Codec = s.opts.codec
		o.Compression = s.opts.compression
		o.Controller = s.opts.controller
	})
	s.opts.metrics.RecordSnapshot(count, time.Since(start), err)
	s.opts.logger.LogSnapshot(count, err)
	return err
}

// Restore reads a snapshot and rebuilds a sequence sized exactly for its
// contents. The codec and compression are taken from the snapshot header;
// the options configure the new sequence (and, via the resource controller,
// rate-limit the read and charge the new arena against the memory budget).
func Restore[V any](ctx context.Context, r io.Reader, optFns ...Option) (*Sequence[V], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	values, err := snapshot.Read[V](ctx, r, func(o *snapshot.Options) {
		o.Controller = opts.controller
	})
	if err != nil {
		opts.metrics.RecordRestore(0, time.Since(start), err)
		opts.logger.LogRestore(0, err)
		return nil, err
	}

	seq, err := New[V](len(values), optFns...)
	if err == nil {
		err = seq.AppendAll(values...)
	}
	opts.metrics.RecordRestore(len(values), time.Since(start), err)
	opts.logger.LogRestore(len(values), err)
	if err != nil {
		if seq != nil {
			_ = seq.Close()
		}
		return nil, err
	}
	return seq, nil
}

// Close releases the arena's backing block in one operation and returns the
// reservation to the resource controller. Every value the sequence ever held
// becomes invalid. Close is idempotent; further Appends return ErrReleased.
func (s *Sequence[V]) Close() error {
	if s.arena.Released() {
		return nil
	}
	s.arena.Release()
	if s.opts.controller != nil {
		s.opts.controller.ReleaseMemory(s.reserved)
	}
	s.opts.logger.Debug("sequence closed", "bytes", s.reserved)
	return nil
}
