package snapshot

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the snapshot body compression scheme. The scheme is
// recorded in the header; readers never guess.
type Compression uint8

const (
	// CompressionNone stores the body as-is.
	CompressionNone Compression = iota

	// CompressionZstd compresses the body with zstd. Best ratio; the
	// default.
	CompressionZstd

	// CompressionLZ4 compresses the body with lz4. Lower ratio, lower CPU;
	// suits rate-limited or latency-sensitive snapshot paths.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// compressWriter wraps w per the scheme and returns the body writer plus a
// close function that flushes compressor state without closing w itself.
func compressWriter(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot: zstd writer: %w", err)
		}
		return zw, zw.Close, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

func compressReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot: zstd reader: %w", err)
		}
		return zr, zr.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}
