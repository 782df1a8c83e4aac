package rdf

import "io"

// Load reads r in the given format into an in-memory source. N-Triples
// yields a plain *MemoryGraph; N-Quads and JSON-LD yield a *MemoryDataset.
func Load(r io.Reader, format Format, opts ...Option) (Source, error) {
	var (
		src Source
		err error
	)
	switch format {
	case FormatNTriples:
		var g *MemoryGraph
		if g, err = ReadNTriples(r, opts...); err == nil {
			src = g
		}
	case FormatNQuads:
		var ds *MemoryDataset
		if ds, err = ReadNQuads(r, opts...); err == nil {
			src = ds
		}
	case FormatJSONLD:
		var ds *MemoryDataset
		if ds, err = ReadJSONLD(r, opts...); err == nil {
			src = ds
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}
