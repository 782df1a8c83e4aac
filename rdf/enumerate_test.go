package rdf

import (
	"errors"
	"testing"
)

type fakeContext struct {
	id      Term
	triples []Triple
	err     error
}

func (c fakeContext) Identifier() Term { return c.id }

func (c fakeContext) ForEachTriple(fn func(Triple) error) error {
	for _, t := range c.triples {
		if err := fn(t); err != nil {
			return err
		}
	}
	return c.err
}

type fakeDataset struct {
	contexts []fakeContext
	def      *fakeContext
}

func (d fakeDataset) ForEachTriple(fn func(Triple) error) error {
	return errors.New("ForEachTriple must not be used for context-aware sources")
}

func (d fakeDataset) Contexts(fn func(Context) error) error {
	for _, c := range d.contexts {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (d fakeDataset) DefaultContext() Context {
	if d.def == nil {
		return nil
	}
	return *d.def
}

func collectPairs(t *testing.T, src Source) map[string]int {
	t.Helper()
	pairs := map[string]int{}
	err := EnumerateContexts(src, func(g Term, tr Triple) error {
		pairs[termKey(g)+" "+termKey(tr.O)]++
		return nil
	})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	return pairs
}

func TestEnumerateContextsPlainSource(t *testing.T) {
	g := NewGraph(IRI{Value: "http://ignored"})
	g.Add(Triple{S: iriA, P: iriB, O: iriC})
	var graphs []Term
	err := EnumerateContexts(g, func(graph Term, _ Triple) error {
		graphs = append(graphs, graph)
		return nil
	})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(graphs) != 1 || graphs[0] != nil {
		t.Fatalf("expected one statement without graph, got %v", graphs)
	}
}

func TestEnumerateContextsAppendsDefault(t *testing.T) {
	g1 := IRI{Value: "http://g1"}
	def := fakeContext{id: BlankNode{ID: "d"}, triples: []Triple{{S: iriA, P: iriB, O: iriA}}}
	ds := fakeDataset{
		contexts: []fakeContext{
			{id: g1, triples: []Triple{{S: iriA, P: iriB, O: iriB}, {S: iriA, P: iriB, O: iriC}}},
			def,
		},
		def: &def,
	}
	pairs := collectPairs(t, ds)
	if pairs["<http://g1> <http://b>"] != 1 || pairs["<http://g1> <http://c>"] != 1 {
		t.Fatalf("unexpected named graph pairs: %v", pairs)
	}
	if pairs["_:d <http://a>"] != 2 {
		t.Fatalf("expected default context statement twice, got %v", pairs)
	}
}

func TestEnumerateContextsWithoutDefault(t *testing.T) {
	ds := fakeDataset{contexts: []fakeContext{{id: iriA, triples: []Triple{{S: iriA, P: iriB, O: iriC}}}}}
	pairs := collectPairs(t, ds)
	if len(pairs) != 1 || pairs["<http://a> <http://c>"] != 1 {
		t.Fatalf("unexpected pairs: %v", pairs)
	}
}

func TestEnumerateContextsErrorsPropagate(t *testing.T) {
	fault := errors.New("fault")
	ds := fakeDataset{contexts: []fakeContext{{id: iriA, err: fault}}}
	if err := EnumerateContexts(ds, func(Term, Triple) error { return nil }); err != fault {
		t.Fatalf("expected context error, got %v", err)
	}

	stop := errors.New("stop")
	ds = fakeDataset{contexts: []fakeContext{{id: iriA, triples: []Triple{{S: iriA, P: iriB, O: iriC}}}}}
	if err := EnumerateContexts(ds, func(Term, Triple) error { return stop }); err != stop {
		t.Fatalf("expected callback error, got %v", err)
	}
}
