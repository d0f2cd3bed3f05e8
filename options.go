package arenalist

import (
	"github.com/veloq/arenalist/codec"
	"github.com/veloq/arenalist/resource"
	"github.com/veloq/arenalist/snapshot"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	controller  *resource.Controller
	codec       codec.Codec
	compression snapshot.Compression
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		codec:       codec.Default,
		compression: snapshot.CompressionZstd,
	}
}

// Option configures a Sequence at construction or restore time.
type Option func(*options)

// WithLogger configures structured logging. Nil restores the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection. Nil restores the
// no-op collector.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithResourceController charges the sequence's arena reservation against
// the controller's memory budget and rate-limits its snapshot IO. New fails
// with ErrAllocation when the budget would be exceeded.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithCodec configures the value codec used by Snapshot. Restore ignores it
// and resolves the codec named in the snapshot header. Nil restores
// codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the snapshot body compression.
// The default is zstd.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
