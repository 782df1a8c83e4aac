package rdf

import (
	"errors"
	"strings"
	"testing"
)

func TestMemoryGraphAddDeduplicates(t *testing.T) {
	g := NewGraph(IRI{Value: "http://example.org/g"})
	tr := Triple{S: iriA, P: iriB, O: Literal{Lexical: "1"}}
	if !g.Add(tr) {
		t.Fatal("expected first add to succeed")
	}
	if g.Add(tr) {
		t.Fatal("expected duplicate add to be rejected")
	}
	if !g.Add(Triple{S: iriA, P: iriB, O: Literal{Lexical: "1", Lang: "en"}}) {
		t.Fatal("expected tagged literal to be distinct")
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 triples, got %d", g.Len())
	}
}

func TestMemoryGraphInsertionOrderAndStop(t *testing.T) {
	g := NewGraph(nil)
	for _, o := range []string{"a", "b", "c"} {
		g.Add(Triple{S: iriA, P: iriB, O: Literal{Lexical: o}})
	}
	var seen []string
	stop := errors.New("stop")
	err := g.ForEachTriple(func(tr Triple) error {
		seen = append(seen, tr.O.(Literal).Lexical)
		if len(seen) == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Fatalf("expected stop error, got %v", err)
	}
	if strings.Join(seen, "") != "ab" {
		t.Fatalf("unexpected order: %v", seen)
	}
}

func TestNewDatasetDefaultIdentifier(t *testing.T) {
	ds := NewDataset()
	id, ok := ds.DefaultGraph().Identifier().(BlankNode)
	if !ok {
		t.Fatalf("expected blank node identifier, got %T", ds.DefaultGraph().Identifier())
	}
	if !strings.HasPrefix(id.ID, "N") || len(id.ID) != 33 {
		t.Fatalf("unexpected default graph id: %s", id.ID)
	}
	if other := NewDataset().DefaultGraph().Identifier(); other == id {
		t.Fatal("expected distinct default graph ids")
	}
}

func TestMemoryDatasetGraphs(t *testing.T) {
	ds := NewDatasetWithDefault(IRI{Value: "urn:default"})
	g1 := IRI{Value: "http://example.org/g1"}
	ds.Add(Quad{S: iriA, P: iriB, O: iriC, G: g1})
	ds.Add(Quad{S: iriA, P: iriB, O: iriC, G: g1})
	ds.Add(Quad{S: iriA, P: iriB, O: iriC})
	ds.Add(Quad{S: iriB, P: iriB, O: iriC, G: IRI{Value: "urn:default"}})

	if ds.Graph(g1) != ds.Graph(IRI{Value: "http://example.org/g1"}) {
		t.Fatal("expected the same graph for equal identifiers")
	}
	if ds.Graph(nil) != ds.DefaultGraph() || ds.Graph(IRI{Value: "urn:default"}) != ds.DefaultGraph() {
		t.Fatal("expected default graph lookups to agree")
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 triples, got %d", ds.Len())
	}
	if ds.DefaultGraph().Len() != 2 {
		t.Fatalf("expected 2 default triples, got %d", ds.DefaultGraph().Len())
	}
}

func TestMemoryDatasetContexts(t *testing.T) {
	ds := NewDataset()
	ds.Graph(IRI{Value: "http://example.org/empty"})
	ds.Add(Quad{S: iriA, P: iriB, O: iriC, G: IRI{Value: "http://example.org/g"}})

	var ids []string
	err := ds.Contexts(func(c Context) error {
		ids = append(ids, c.Identifier().String())
		return nil
	})
	if err != nil {
		t.Fatalf("contexts: %v", err)
	}
	if len(ids) != 1 || ids[0] != "http://example.org/g" {
		t.Fatalf("unexpected contexts: %v", ids)
	}
	if ds.DefaultContext() != nil {
		t.Fatal("expected no default context while the default graph is empty")
	}

	ds.Add(Quad{S: iriA, P: iriB, O: iriC})
	ids = nil
	_ = ds.Contexts(func(c Context) error {
		ids = append(ids, c.Identifier().String())
		return nil
	})
	if len(ids) != 2 || !strings.HasPrefix(ids[0], "_:N") {
		t.Fatalf("expected default graph first, got %v", ids)
	}
	if ds.DefaultContext() == nil {
		t.Fatal("expected default context")
	}
}

func TestMemoryDatasetForEachQuad(t *testing.T) {
	ds := NewDataset()
	g := IRI{Value: "http://example.org/g"}
	ds.Add(Quad{S: iriA, P: iriB, O: iriC})
	ds.Add(Quad{S: iriA, P: iriB, O: iriC, G: g})

	var quads []Quad
	if err := ds.ForEachQuad(func(q Quad) error {
		quads = append(quads, q)
		return nil
	}); err != nil {
		t.Fatalf("for each quad: %v", err)
	}
	if len(quads) != 2 || quads[0].G != nil || quads[1].G != g {
		t.Fatalf("unexpected quads: %+v", quads)
	}

	n := 0
	_ = ds.ForEachTriple(func(Triple) error { n++; return nil })
	if n != 2 {
		t.Fatalf("expected each triple once, got %d", n)
	}
}
