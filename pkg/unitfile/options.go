// SPDX-License-Identifier: MPL-2.0

package unitfile

import (
	"io"

	"github.com/invowk/measures/pkg/catalog"

	"github.com/charmbracelet/log"
)

// DefaultMaxFileSize is the largest unitfile accepted unless overridden (4 MiB).
const DefaultMaxFileSize int64 = 4 << 20

type (
	// Option configures parsing and resolution.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		logger      *log.Logger
		base        *catalog.Catalog
	}
)

func defaultOptions() options {
	return options{
		filename:    "<input>",
		maxFileSize: DefaultMaxFileSize,
		logger:      log.New(io.Discard),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFilename sets the file name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		if name != "" {
			o.filename = name
		}
	}
}

// WithMaxFileSize limits the accepted input size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithLogger sets the logger receiving resolution progress at debug level
// and shadowed definitions at warn level.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBase resolves references that the unitfile does not define against
// base, and merges base's entries into the result. Definitions in the
// unitfile shadow base entries with the same name.
func WithBase(base *catalog.Catalog) Option {
	return func(o *options) { o.base = base }
}
