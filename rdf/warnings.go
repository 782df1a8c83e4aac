package rdf

import "fmt"

// WarningCode identifies an advisory condition.
type WarningCode string

const (
	// WarnBaseIgnored indicates a base IRI was supplied and ignored.
	WarnBaseIgnored WarningCode = "BASE_IGNORED"
	// WarnEncodingIgnored indicates a non-UTF-8 encoding was requested and ignored.
	WarnEncodingIgnored WarningCode = "ENCODING_IGNORED"
)

// Warning is a non-fatal condition reported while configuring a serializer.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string { return string(w.Code) + ": " + w.Message }

func baseIgnoredWarning(base string) Warning {
	return Warning{
		Code:    WarnBaseIgnored,
		Message: fmt.Sprintf("hextuples: base IRI %q is not supported and was ignored", base),
	}
}

func encodingIgnoredWarning(encoding string) Warning {
	return Warning{
		Code:    WarnEncodingIgnored,
		Message: fmt.Sprintf("hextuples: output is always utf-8 encoded; requested encoding %q was ignored", encoding),
	}
}

// checkOptions reports the warnings implied by opts.
func checkOptions(opts Options) {
	if opts.Base != "" {
		opts.warn(baseIgnoredWarning(opts.Base))
	}
	if !isUTF8(opts.Encoding) {
		opts.warn(encodingIgnoredWarning(opts.Encoding))
	}
}
