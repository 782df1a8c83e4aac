package rdf

import (
	"bytes"
	"io"
	"strings"
)

// formatDetectionBufferSize is how much input DetectFormat inspects.
const formatDetectionBufferSize = 4096

// DetectFormat guesses the input format from the first bytes of r.
// It returns a reader that replays the inspected bytes before the rest of r.
//
// JSON input is JSON-LD. Line-based input is N-Quads if any complete
// statement in the sample names a graph, and N-Triples otherwise. Input that
// fits neither yields ErrUnsupportedFormat; a read failure is returned
// unchanged, together with the replay reader.
func DetectFormat(r io.Reader) (Format, io.Reader, error) {
	buf := make([]byte, formatDetectionBufferSize)
	n, err := io.ReadFull(r, buf)
	sample := buf[:n]
	replay := io.MultiReader(bytes.NewReader(sample), r)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatAuto, replay, err
	}

	format, ok := detectFromSample(string(sample), n == len(buf))
	if !ok {
		return FormatAuto, replay, ErrUnsupportedFormat
	}
	return format, replay, nil
}

func detectFromSample(sample string, truncated bool) (Format, bool) {
	trimmed := strings.TrimSpace(sample)
	if trimmed == "" {
		return FormatAuto, false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSONLD, true
	}

	lines := strings.Split(sample, "\n")
	if truncated && len(lines) > 1 {
		// The last line may be cut short.
		lines = lines[:len(lines)-1]
	}
	statements := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := parseNTLine(line, FormatNQuads)
		if err != nil {
			return FormatAuto, false
		}
		if q.G != nil {
			return FormatNQuads, true
		}
		statements++
	}
	if statements == 0 {
		return FormatAuto, false
	}
	return FormatNTriples, true
}
