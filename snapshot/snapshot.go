// Package snapshot persists the values of an arena-backed sequence to an
// io.Writer and reads them back for replay into a fresh arena.
//
// The format is self-describing: a small uncompressed header records the
// codec name and compression scheme, followed by the entry count and
// length-prefixed encoded values, optionally compressed as one stream.
// Snapshots capture values only — refs and arena layout are rebuilt on
// restore, so a snapshot taken with one capacity can be restored into an
// arena of another.
package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/veloq/arenalist/codec"
	"github.com/veloq/arenalist/resource"
)

var magic = [4]byte{'A', 'L', 'S', 'Q'}

const version = 1

// maxEntrySize bounds a single encoded value (64 MiB). Anything larger is
// treated as corruption rather than allocated blindly.
const maxEntrySize = 64 << 20

var (
	// ErrInvalidHeader indicates the stream does not start with a snapshot
	// header.
	ErrInvalidHeader = errors.New("snapshot: invalid header")

	// ErrUnsupportedVersion indicates a snapshot written by a newer format
	// revision.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

	// ErrUnknownCodec indicates the header names a codec this build does not
	// provide.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")

	// ErrUnknownCompression indicates an unrecognized compression scheme.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")

	// ErrCorrupt indicates a structurally invalid snapshot body.
	ErrCorrupt = errors.New("snapshot: corrupt body")
)

// Options configures snapshot writes and reads.
type Options struct {
	// Codec encodes values on write. Read ignores it and resolves the codec
	// named in the header. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the body compression on write. Read ignores it.
	Compression Compression

	// Controller, when set, rate-limits the snapshot's IO.
	Controller *resource.Controller
}

// DefaultOptions are the options applied before any option functions run.
var DefaultOptions = Options{
	Compression: CompressionZstd,
}

func buildOptions(optFns []func(*Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	return opts
}

// Write streams count values to w. The count is written ahead of the
// entries, so it must match what the sequence yields; a mismatch means the
// sequence was mutated mid-snapshot and is reported as an error.
func Write[V any](ctx context.Context, w io.Writer, count int, values iter.Seq[V], optFns ...func(*Options)) error {
	opts := buildOptions(optFns)

	if opts.Controller != nil {
		w = resource.NewRateLimitedWriter(ctx, w, opts.Controller)
	}

	if err := writeHeader(w, opts); err != nil {
		return err
	}

	body, closeBody, err := compressWriter(w, opts.Compression)
	if err != nil {
		return err
	}
	// The compressor may own goroutines (zstd); it must be closed on every
	// exit, while the success path still observes the flush error.
	closed := false
	defer func() {
		if !closed {
			_ = closeBody()
		}
	}()

	if err := binary.Write(body, binary.LittleEndian, uint64(count)); err != nil {
		return fmt.Errorf("snapshot: write count: %w", err)
	}

	written := 0
	for v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := opts.Codec.Marshal(v)
		if err != nil {
			return fmt.Errorf("snapshot: encode entry %d: %w", written, err)
		}
		if err := binary.Write(body, binary.LittleEndian, uint32(len(data))); err != nil {
			return fmt.Errorf("snapshot: write entry %d: %w", written, err)
		}
		if _, err := body.Write(data); err != nil {
			return fmt.Errorf("snapshot: write entry %d: %w", written, err)
		}
		written++
	}
	if written != count {
		return fmt.Errorf("snapshot: sequence yielded %d values, expected %d", written, count)
	}

	closed = true
	return closeBody()
}

// Read decodes a snapshot into a value slice in insertion order. The codec
// and compression are taken from the header, not from the options.
func Read[V any](ctx context.Context, r io.Reader, optFns ...func(*Options)) ([]V, error) {
	opts := buildOptions(optFns)

	if opts.Controller != nil {
		r = resource.NewRateLimitedReader(ctx, r, opts.Controller)
	}

	c, compression, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	body, closeBody, err := compressReader(r, compression)
	if err != nil {
		return nil, err
	}
	defer closeBody()

	var count uint64
	if err := binary.Read(body, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: count: %w", ErrCorrupt, err)
	}

	values := make([]V, 0, int(min(count, 1024)))
	for i := uint64(0); i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var size uint32
		if err := binary.Read(body, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: entry %d length: %w", ErrCorrupt, i, err)
		}
		if size > maxEntrySize {
			return nil, fmt.Errorf("%w: entry %d claims %d bytes", ErrCorrupt, i, size)
		}
		data := make([]byte, size)
		if _, err := io.ReadFull(body, data); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrCorrupt, i, err)
		}
		var v V
		if err := c.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("snapshot: decode entry %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func writeHeader(w io.Writer, opts Options) error {
	name := opts.Codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("snapshot: codec name %q too long", name)
	}
	header := make([]byte, 0, len(magic)+3+len(name))
	header = append(header, magic[:]...)
	header = append(header, version, byte(opts.Compression), byte(len(name)))
	header = append(header, name...)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	return nil
}

func readHeader(r io.Reader) (codec.Codec, Compression, error) {
	fixed := make([]byte, len(magic)+3)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if [4]byte(fixed[:4]) != magic {
		return nil, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, fixed[:4])
	}
	if fixed[4] != version {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, fixed[4])
	}
	compression := Compression(fixed[5])

	name := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, 0, fmt.Errorf("%w: codec name: %w", ErrInvalidHeader, err)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, compression, nil
}
