package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

const (
	jsonldDefaultGraph = "@default"
	rdfLangString      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// ReadJSONLD expands a JSON-LD document to RDF and loads it into a dataset.
// The Base option resolves relative IRIs in the document.
func ReadJSONLD(r io.Reader, opts ...Option) (*MemoryDataset, error) {
	options := buildOptions(opts)
	if err := options.Context.Err(); err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, wrapParseError(string(FormatJSONLD), "", 0, 0, err)
	}

	goldOpts := ld.NewJsonLdOptions(options.Base)
	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(doc, goldOpts)
	if err != nil {
		return nil, wrapParseError(string(FormatJSONLD), "", 0, 0, err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}

	ds := NewDataset()
	for _, name := range sortedGraphNames(dataset) {
		graph := jsonldGraphTerm(name)
		for _, q := range dataset.Graphs[name] {
			if err := options.Context.Err(); err != nil {
				return nil, err
			}
			ds.Add(Quad{
				S: fromJSONGold(q.Subject),
				P: fromJSONGold(q.Predicate),
				O: fromJSONGold(q.Object),
				G: graph,
			})
		}
	}
	return ds, nil
}

// sortedGraphNames orders graphs deterministically, default graph first.
func sortedGraphNames(dataset *ld.RDFDataset) []string {
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == jsonldDefaultGraph || names[j] == jsonldDefaultGraph {
			return names[i] == jsonldDefaultGraph
		}
		return names[i] < names[j]
	})
	return names
}

func jsonldGraphTerm(name string) Term {
	switch {
	case name == jsonldDefaultGraph:
		return nil
	case strings.HasPrefix(name, "_:"):
		return BlankNode{ID: name[2:]}
	default:
		return IRI{Value: name}
	}
}

func fromJSONGold(node ld.Node) Term {
	switch v := node.(type) {
	case ld.IRI:
		return IRI{Value: v.Value}
	case ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(v.Attribute, "_:")}
	case ld.Literal:
		lit := Literal{Lexical: v.Value, Lang: v.Language}
		if !(v.Language != "" && v.Datatype == rdfLangString) {
			lit.Datatype = IRI{Value: v.Datatype}
		}
		return lit
	case nil:
		return nil
	default:
		return IRI{Value: node.GetValue()}
	}
}
