package snapshot

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloq/arenalist/codec"
	"github.com/veloq/arenalist/resource"
)

func writeSnapshot(t *testing.T, values []int, optFns ...func(*Options)) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, len(values), slices.Values(values), optFns...)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		compression Compression
		codec       codec.Codec
	}{
		{"none/json", CompressionNone, codec.JSON{}},
		{"none/go-json", CompressionNone, codec.GoJSON{}},
		{"zstd/go-json", CompressionZstd, codec.GoJSON{}},
		{"lz4/json", CompressionLZ4, codec.JSON{}},
	}

	in := []int{10, 20, 30, 40, 50}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := writeSnapshot(t, in, func(o *Options) {
				o.Compression = tt.compression
				o.Codec = tt.codec
			})

			out, err := Read[int](context.Background(), bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestRoundTripEmpty(t *testing.T) {
	data := writeSnapshot(t, nil)
	out, err := Read[int](context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoundTripStruct(t *testing.T) {
	type event struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	in := []event{{1, "created"}, {2, "updated"}}

	var buf bytes.Buffer
	err := Write(context.Background(), &buf, len(in), slices.Values(in))
	require.NoError(t, err)

	out, err := Read[event](context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// failingCodec refuses every encode, forcing Write onto its error path.
type failingCodec struct{}

func (failingCodec) Marshal(any) ([]byte, error) { return nil, errors.New("encode refused") }
func (failingCodec) Unmarshal([]byte, any) error { return errors.New("decode refused") }
func (failingCodec) Name() string                { return "json" }

func TestWriteErrorShutsDownCompressor(t *testing.T) {
	before := runtime.NumGoroutine()

	// Each zstd writer owns worker goroutines that only Close tears down;
	// a failed write must not strand them.
	for i := 0; i < 25; i++ {
		var buf bytes.Buffer
		err := Write(context.Background(), &buf, 1, slices.Values([]int{1}), func(o *Options) {
			o.Codec = failingCodec{}
			o.Compression = CompressionZstd
		})
		require.Error(t, err)
	}

	after := runtime.NumGoroutine()
	for i := 0; i < 50 && after > before+2; i++ {
		// Workers exit asynchronously after Close; give them a moment.
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	assert.LessOrEqual(t, after, before+2)
}

func TestCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, 3, slices.Values([]int{1, 2}))
	require.Error(t, err)
}

func TestBadMagic(t *testing.T) {
	data := writeSnapshot(t, []int{1})
	data[0] = 'X'

	_, err := Read[int](context.Background(), bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestUnsupportedVersion(t *testing.T) {
	data := writeSnapshot(t, []int{1})
	data[4] = 99

	_, err := Read[int](context.Background(), bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestUnknownCompression(t *testing.T) {
	data := writeSnapshot(t, []int{1})
	data[5] = 0xEE

	_, err := Read[int](context.Background(), bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestUnknownCodecName(t *testing.T) {
	data := writeSnapshot(t, []int{1}, func(o *Options) {
		o.Compression = CompressionNone
	})
	// Corrupt the codec name recorded after the fixed header fields.
	data[7] = 'z'

	_, err := Read[int](context.Background(), bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnknownCodec)
}

func TestTruncatedBody(t *testing.T) {
	data := writeSnapshot(t, []int{1, 2, 3}, func(o *Options) {
		o.Compression = CompressionNone
	})

	_, err := Read[int](context.Background(), bytes.NewReader(data[:len(data)-3]))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestRateLimitedWrite(t *testing.T) {
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	in := []int{1, 2, 3}
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, len(in), slices.Values(in), func(o *Options) {
		o.Controller = rc
	})
	require.NoError(t, err)

	out, err := Read[int](context.Background(), &buf, func(o *Options) {
		o.Controller = rc
	})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "unknown", Compression(9).String())
}
