package mscfb

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures how a compound file is built and written.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	validation Validation
	chunkSize  int
	classID    uuid.UUID
	paddedSize bool
}

func defaultOptions() *options {
	return &options{
		logger:     slog.New(slog.DiscardHandler),
		validation: ValidationStrict,
		chunkSize:  DEFAULT_WRITE_CHUNK,
		classID:    uuid.Nil,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug records and the chunked write
// fallback.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithValidation sets how much of the built layout is checked before writing.
func WithValidation(validation Validation) Option {
	return func(o *options) {
		o.validation = validation
	}
}

// WithChunkSize sets the chunk size used when a sink rejects one large write.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

// WithClassID sets the CLSID stored in the Root Entry.
func WithClassID(id uuid.UUID) Option {
	return func(o *options) {
		o.classID = id
	}
}

// WithPaddedStreamSize records the padded payload length in the stream's
// directory entry instead of the payload's own length.
func WithPaddedStreamSize() Option {
	return func(o *options) {
		o.paddedSize = true
	}
}
