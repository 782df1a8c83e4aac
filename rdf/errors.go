package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeLineTooLong indicates a line exceeded the configured limit.
	ErrCodeLineTooLong ErrorCode = "LINE_TOO_LONG"
	// ErrCodeNilSource indicates Serialize was called without a source.
	ErrCodeNilSource ErrorCode = "NIL_SOURCE"
	// ErrCodeParseError indicates a loader rejected its input.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeIOError covers failures of the source or the output stream.
	ErrCodeIOError ErrorCode = "IO_ERROR"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("rdf: line exceeds configured limit")
	// ErrNilSource indicates Serialize was called with a nil source.
	ErrNilSource = errors.New("rdf: nil source")
)

// Code returns the error code for an error.
// Returns empty string for nil errors or io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrLineTooLong):
		return ErrCodeLineTooLong
	case errors.Is(err, ErrNilSource):
		return ErrCodeNilSource
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ErrCodeParseError
	}
	return ErrCodeIOError
}

// ParseError provides structured context for loader failures.
type ParseError struct {
	Format    string // Format name (e.g., "nquads", "jsonld")
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// formatExcerpt shows the statement around the error column with a caret.
func (e *ParseError) formatExcerpt() string {
	if e.Statement == "" {
		return ""
	}

	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column <= 0 {
		if len(e.Statement) > maxExcerptLen {
			return e.Statement[:maxExcerptLen] + "..."
		}
		return e.Statement
	}

	pos := min(e.Column-1, len(e.Statement))
	start := max(pos-contextLen, 0)
	end := min(pos+contextLen, len(e.Statement))

	excerpt := e.Statement[start:end]
	caret := pos - start
	if start > 0 {
		excerpt = "..." + excerpt
		caret += 3
	}
	if end < len(e.Statement) {
		excerpt += "..."
	}
	return excerpt + "\n  " + strings.Repeat(" ", caret) + "^"
}

// wrapParseError attaches format and position to err. An existing
// *ParseError keeps its position when the caller has none.
func wrapParseError(format, statement string, line, column int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if line == 0 {
			line = parseErr.Line
		}
		if column == 0 {
			column = parseErr.Column
		}
		err = parseErr.Err
	}
	return &ParseError{
		Format:    format,
		Statement: statement,
		Line:      line,
		Column:    column,
		Err:       err,
	}
}
