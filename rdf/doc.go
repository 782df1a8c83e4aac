// Package rdf serializes RDF graphs and datasets to Hextuples.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Hextuples is a line format: every statement becomes one JSON array of six
// fields, subject, predicate, object, datatype, language and graph:
//
//	["http://a", "http://b", 5, "http://www.w3.org/2001/XMLSchema#integer", "", ""]
//	["http://a", "http://b", "hello", "http://www.w3.org/2001/XMLSchema#string", "en", ""]
//
// Numeric and boolean literals are written as bare tokens; everything else is
// quoted. Graph labels that are blank-node style ("_...") or file:// origins
// are suppressed.
//
// Any Source can be serialized. Sources that also implement ContextAware are
// enumerated graph by graph:
//
//	ds, err := rdf.ReadNQuads(f)
//	if err != nil {
//	    // handle error
//	}
//	if err := rdf.Serialize(os.Stdout, ds); err != nil {
//	    // handle error
//	}
//
// The serializer streams one line at a time and never closes or flushes the
// output. Base IRIs and non-UTF-8 encodings are accepted as options and
// ignored with a Warning.
//
// MemoryGraph and MemoryDataset are small in-memory stores, and ReadNTriples,
// ReadNQuads and ReadJSONLD fill them from documents.
package rdf
