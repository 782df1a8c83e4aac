package rdf

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Source enumerates the triples of a graph or dataset.
type Source interface {
	ForEachTriple(fn func(Triple) error) error
}

// Context is a named graph: a Source with an identifier.
type Context interface {
	Source
	Identifier() Term
}

// ContextAware is implemented by sources that partition their triples into
// named graphs. DefaultContext returns nil when no default graph is designated.
type ContextAware interface {
	Contexts(fn func(Context) error) error
	DefaultContext() Context
}

// MemoryGraph is an insertion-ordered, duplicate-free set of triples.
// It is safe for concurrent use.
type MemoryGraph struct {
	mu      sync.RWMutex
	id      Term
	triples []Triple
	index   map[string]struct{}
}

// NewGraph creates an empty graph. id may be nil for an anonymous graph.
func NewGraph(id Term) *MemoryGraph {
	return &MemoryGraph{id: id, index: make(map[string]struct{})}
}

// Identifier returns the graph name.
func (g *MemoryGraph) Identifier() Term { return g.id }

// Add inserts t and reports whether it was not already present.
func (g *MemoryGraph) Add(t Triple) bool {
	key := termKey(t.S) + " " + termKey(t.P) + " " + termKey(t.O)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.index[key]; ok {
		return false
	}
	g.index[key] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Len returns the number of triples.
func (g *MemoryGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.triples)
}

// ForEachTriple calls fn for every triple in insertion order and stops at
// the first error.
func (g *MemoryGraph) ForEachTriple(fn func(Triple) error) error {
	g.mu.RLock()
	triples := g.triples[:len(g.triples):len(g.triples)]
	g.mu.RUnlock()
	for _, t := range triples {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

// MemoryDataset holds a default graph and any number of named graphs.
// It is safe for concurrent use.
type MemoryDataset struct {
	mu     sync.RWMutex
	def    *MemoryGraph
	graphs []*MemoryGraph
	byKey  map[string]*MemoryGraph
}

// NewDataset creates an empty dataset. The default graph is named by a
// freshly generated blank node, so it never surfaces as a graph label.
func NewDataset() *MemoryDataset {
	id := BlankNode{ID: "N" + strings.ReplaceAll(uuid.NewString(), "-", "")}
	return NewDatasetWithDefault(id)
}

// NewDatasetWithDefault creates an empty dataset whose default graph has
// the given identifier.
func NewDatasetWithDefault(defaultID Term) *MemoryDataset {
	return &MemoryDataset{
		def:   NewGraph(defaultID),
		byKey: make(map[string]*MemoryGraph),
	}
}

// Add inserts q into its graph, creating the graph when needed. A nil graph
// name targets the default graph.
func (d *MemoryDataset) Add(q Quad) bool {
	return d.Graph(q.G).Add(q.ToTriple())
}

// Graph returns the graph named id, creating it if absent. A nil id, or the
// default graph's own identifier, returns the default graph.
func (d *MemoryDataset) Graph(id Term) *MemoryGraph {
	if id == nil {
		return d.def
	}
	key := termKey(id)
	if key == termKey(d.def.id) {
		return d.def
	}
	d.mu.RLock()
	g, ok := d.byKey[key]
	d.mu.RUnlock()
	if ok {
		return g
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if g, ok := d.byKey[key]; ok {
		return g
	}
	g = NewGraph(id)
	d.byKey[key] = g
	d.graphs = append(d.graphs, g)
	return g
}

// DefaultGraph returns the default graph.
func (d *MemoryDataset) DefaultGraph() *MemoryGraph { return d.def }

// Len returns the number of triples across all graphs.
func (d *MemoryDataset) Len() int {
	n := d.def.Len()
	for _, g := range d.namedGraphs() {
		n += g.Len()
	}
	return n
}

// Contexts calls fn for every non-empty graph: the default graph first,
// then named graphs in creation order.
func (d *MemoryDataset) Contexts(fn func(Context) error) error {
	if d.def.Len() > 0 {
		if err := fn(d.def); err != nil {
			return err
		}
	}
	for _, g := range d.namedGraphs() {
		if g.Len() == 0 {
			continue
		}
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

// DefaultContext returns the default graph, or nil while it is empty.
func (d *MemoryDataset) DefaultContext() Context {
	if d.def.Len() == 0 {
		return nil
	}
	return d.def
}

// ForEachTriple visits every triple of every graph once.
func (d *MemoryDataset) ForEachTriple(fn func(Triple) error) error {
	if err := d.def.ForEachTriple(fn); err != nil {
		return err
	}
	for _, g := range d.namedGraphs() {
		if err := g.ForEachTriple(fn); err != nil {
			return err
		}
	}
	return nil
}

// ForEachQuad visits every triple of every graph once, tagged with its graph
// name. Default graph triples carry a nil graph.
func (d *MemoryDataset) ForEachQuad(fn func(Quad) error) error {
	err := d.def.ForEachTriple(func(t Triple) error { return fn(t.ToQuad()) })
	if err != nil {
		return err
	}
	for _, g := range d.namedGraphs() {
		id := g.id
		err := g.ForEachTriple(func(t Triple) error { return fn(t.ToQuadInGraph(id)) })
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *MemoryDataset) namedGraphs() []*MemoryGraph {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.graphs[:len(d.graphs):len(d.graphs)]
}
