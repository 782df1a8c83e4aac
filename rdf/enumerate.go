package rdf

// EnumerateContexts calls fn once for every (graph, triple) pair of src.
//
// Context-aware sources yield each of their contexts, followed by the
// designated default context when there is one. A store that also lists its
// default graph among Contexts therefore has those triples visited twice.
// Other sources are a single context with a nil graph.
//
// Errors from src or fn stop the traversal and are returned unchanged.
func EnumerateContexts(src Source, fn func(graph Term, t Triple) error) error {
	aware, ok := src.(ContextAware)
	if !ok {
		return src.ForEachTriple(func(t Triple) error {
			return fn(nil, t)
		})
	}

	err := aware.Contexts(func(c Context) error {
		return enumerateContext(c, fn)
	})
	if err != nil {
		return err
	}
	if def := aware.DefaultContext(); def != nil {
		return enumerateContext(def, fn)
	}
	return nil
}

func enumerateContext(c Context, fn func(Term, Triple) error) error {
	id := c.Identifier()
	return c.ForEachTriple(func(t Triple) error {
		return fn(id, t)
	})
}
