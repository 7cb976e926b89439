package idx

import "go.uber.org/zap"

// DefaultMaxPrealloc bounds the buffer pre-sized from header dimensions.
const DefaultMaxPrealloc = 64 << 20

// Option configures a decoder.
type Option func(*options)

type options struct {
	strict      bool
	maxPrealloc int
	logger      *zap.Logger
}

func defaultOptions() *options {
	return &options{
		maxPrealloc: DefaultMaxPrealloc,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStrict makes the decoder fail with ErrLengthMismatch when the payload
// length differs from the size declared by the header. By default a short
// payload yields fewer items and surplus complete items are kept.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithMaxPrealloc caps the capacity hint derived from the header. It never
// limits how many bytes are read. Negative values are ignored.
func WithMaxPrealloc(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxPrealloc = n
		}
	}
}

// WithLogger sets the logger for a single decoder, overriding Logger().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// hint returns the preallocation size for a declared payload.
func (o *options) hint(declared uint64) int {
	if declared > uint64(o.maxPrealloc) {
		return o.maxPrealloc
	}
	return int(declared)
}
