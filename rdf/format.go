package rdf

import (
	"path/filepath"
	"strings"
)

// Format identifies RDF serialization formats.
type Format string

const (
	FormatAuto      Format = ""
	FormatNTriples  Format = "ntriples"
	FormatNQuads    Format = "nquads"
	FormatJSONLD    Format = "jsonld"
	FormatHextuples Format = "hextuples"
)

// HextuplesContentType is the media type of Hextuples documents.
const HextuplesContentType = "application/hex+x-ndjson"

// InputFormats lists the formats Load accepts.
var InputFormats = []Format{FormatNTriples, FormatNQuads, FormatJSONLD}

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ntriples", "n-triples", "nt":
		return FormatNTriples, true
	case "nquads", "n-quads", "nq":
		return FormatNQuads, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	case "hextuples", "hext", "hex":
		return FormatHextuples, true
	default:
		return "", false
	}
}

// FormatFromPath infers a format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return FormatNTriples, true
	case ".nq":
		return FormatNQuads, true
	case ".jsonld", ".json":
		return FormatJSONLD, true
	case ".hext":
		return FormatHextuples, true
	default:
		return "", false
	}
}

// ContentType returns the media type of f, or "" if unknown.
func (f Format) ContentType() string {
	switch f {
	case FormatNTriples:
		return "application/n-triples"
	case FormatNQuads:
		return "application/n-quads"
	case FormatJSONLD:
		return "application/ld+json"
	case FormatHextuples:
		return HextuplesContentType
	default:
		return ""
	}
}
