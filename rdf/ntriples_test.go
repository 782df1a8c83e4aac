package rdf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReadNTriples(t *testing.T) {
	input := `# comment
<http://a> <http://b> "5"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://a> <http://b> "hello"@en .
_:s1 <http://b> _:o1.

<http://a> <http://b> "line\nbreak \"q\" \u00e9" .
`
	g, err := ReadNTriples(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var triples []Triple
	_ = g.ForEachTriple(func(tr Triple) error {
		triples = append(triples, tr)
		return nil
	})
	if len(triples) != 4 {
		t.Fatalf("expected 4 triples, got %d", len(triples))
	}
	if lit := triples[0].O.(Literal); lit.Lexical != "5" || lit.Datatype.Value != XSDInteger {
		t.Fatalf("unexpected typed literal: %+v", lit)
	}
	if lit := triples[1].O.(Literal); lit.Lang != "en" || lit.HasDatatype() {
		t.Fatalf("unexpected tagged literal: %+v", lit)
	}
	if triples[2].S != (BlankNode{ID: "s1"}) || triples[2].O != (BlankNode{ID: "o1"}) {
		t.Fatalf("unexpected blank nodes: %+v", triples[2])
	}
	if lit := triples[3].O.(Literal); lit.Lexical != "line\nbreak \"q\" é" {
		t.Fatalf("unexpected escapes: %q", lit.Lexical)
	}
}

func TestReadNQuads(t *testing.T) {
	input := `<http://a> <http://b> <http://c> <http://g> .
<http://a> <http://b> <http://c> .
<http://a> <http://b> "x" _:g2 .
`
	ds, err := ReadNQuads(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 statements, got %d", ds.Len())
	}
	if ds.DefaultGraph().Len() != 1 {
		t.Fatalf("expected 1 default statement, got %d", ds.DefaultGraph().Len())
	}
	if ds.Graph(IRI{Value: "http://g"}).Len() != 1 || ds.Graph(BlankNode{ID: "g2"}).Len() != 1 {
		t.Fatal("expected named graph statements")
	}
}

func TestReadNTriplesRejectsGraphTerm(t *testing.T) {
	_, err := ReadNTriples(strings.NewReader("<http://a> <http://b> <http://c> <http://g> .\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 1 || parseErr.Format != "ntriples" || parseErr.Column == 0 {
		t.Fatalf("unexpected position: %+v", parseErr)
	}
}

func TestReadNTriplesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing dot", "<http://a> <http://b> <http://c>\n", 1},
		{"unterminated iri", "<http://a> <http://b> <http://c .\n", 1},
		{"unterminated literal", "<http://a> <http://b> \"abc .\n", 1},
		{"literal subject", "\"s\" <http://b> <http://c> .\n", 1},
		{"bad escape", "<http://a> <http://b> \"\\q\" .\n", 1},
		{"second line", "<http://a> <http://b> <http://c> .\n<http://a> <http://b> .\n", 2},
		{"trailing garbage", "<http://a> <http://b> <http://c> . x\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadNTriples(strings.NewReader(tt.input))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if parseErr.Line != tt.line {
				t.Fatalf("expected line %d, got %d", tt.line, parseErr.Line)
			}
			if Code(err) != ErrCodeParseError {
				t.Fatalf("unexpected code %s", Code(err))
			}
		})
	}
}

func TestReadNTriplesLineLimit(t *testing.T) {
	input := "<http://a> <http://b> \"" + strings.Repeat("x", 64) + "\" .\n"
	_, err := ReadNTriples(strings.NewReader(input), OptMaxLineBytes(32))
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if Code(err) != ErrCodeLineTooLong {
		t.Fatalf("unexpected code %s", Code(err))
	}
	if _, err := ReadNTriples(strings.NewReader(input), OptMaxLineBytes(-1)); err != nil {
		t.Fatalf("expected disabled limit to accept input, got %v", err)
	}
}

func TestReadNQuadsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadNQuads(strings.NewReader("<http://a> <http://b> <http://c> .\n"), OptContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNQuadsToHextuples(t *testing.T) {
	input := `<http://a> <http://b> "5"^^<http://www.w3.org/2001/XMLSchema#integer> <http://g> .
<http://a> <http://b> "true" <file:///tmp/x.nq> .
`
	ds, err := ReadNQuads(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, ds); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `["http://a", "http://b", 5, "http://www.w3.org/2001/XMLSchema#integer", "", "http://g"]` + "\n" +
		`["http://a", "http://b", true, "http://www.w3.org/2001/XMLSchema#string", "", ""]` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
