package rdf

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultMaxLineBytes bounds a single input line for the line-based loaders.
const DefaultMaxLineBytes = 1 << 20

// Option configures serializer and loader behavior.
type Option func(*Options)

// Options configures serializer and loader behavior.
type Options struct {
	// Context for cancellation of loaders. The serializer itself is not cancellable.
	Context context.Context

	// MaxLineBytes limits line length in the N-Triples/N-Quads loaders.
	MaxLineBytes int

	// Base is a caller-supplied base IRI. Hextuples has no relative IRIs, so
	// a non-empty value only produces a warning.
	Base string

	// Encoding is the requested output encoding. Output is always UTF-8;
	// anything else produces a warning.
	Encoding string

	// EscapeStrings makes every quoted token a valid JSON string.
	EscapeStrings bool

	// Logger receives warnings when no WarningHandler is set.
	Logger *log.Logger

	// WarningHandler receives advisory warnings.
	WarningHandler func(Warning)
}

// OptContext sets the context for cancellation of loaders.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptMaxLineBytes sets the maximum line size for line-based loaders.
// Negative values disable the limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

// OptBase passes a base IRI. It is accepted for interface compatibility
// with other serializers and ignored with a warning.
func OptBase(base string) Option {
	return func(opts *Options) {
		opts.Base = base
	}
}

// OptEncoding requests an output encoding. Anything other than UTF-8 is
// ignored with a warning.
func OptEncoding(encoding string) Option {
	return func(opts *Options) {
		opts.Encoding = encoding
	}
}

// OptEscapeStrings enables JSON escaping of quoted tokens.
//
// By default lexical forms and IRIs are copied between quotes verbatim, so a
// literal containing '"' or a newline yields a line that is not valid JSON.
func OptEscapeStrings() Option {
	return func(opts *Options) {
		opts.EscapeStrings = true
	}
}

// OptLogger sets the logger used for warnings.
func OptLogger(logger *log.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OptWarningHandler routes warnings to fn instead of the logger.
func OptWarningHandler(fn func(Warning)) Option {
	return func(opts *Options) {
		opts.WarningHandler = fn
	}
}

func defaultOptions() Options {
	return Options{
		Context:      context.Background(),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Context == nil {
		options.Context = context.Background()
	}
	if options.MaxLineBytes == 0 {
		options.MaxLineBytes = DefaultMaxLineBytes
	}
	return options
}

// warn delivers w to the handler, or logs it.
func (o Options) warn(w Warning) {
	if o.WarningHandler != nil {
		o.WarningHandler(w)
		return
	}
	logger := o.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn(w.Message, "code", w.Code)
}

// isUTF8 reports whether name is unset or names UTF-8.
func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}
