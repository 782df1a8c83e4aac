package rdf

import (
	"io"
	"strings"
)

// Record holds the six rendered tokens of a Hextuples line in order:
// subject, predicate, object, datatype, language, graph.
type Record [6]string

const emptyToken = `""`

// String renders the record without the trailing newline.
func (r Record) String() string {
	line := r.appendLine(nil)
	return string(line[:len(line)-1])
}

// appendLine appends "[f0, f1, f2, f3, f4, f5]\n" to dst.
func (r Record) appendLine(dst []byte) []byte {
	dst = append(dst, '[')
	for i, field := range r {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, field...)
	}
	return append(dst, ']', '\n')
}

// EncodeRecord renders one statement. g is the graph the statement was
// enumerated from, or nil for a plain graph.
func EncodeRecord(s, p, o, g Term) Record {
	return encodeRecord(s, p, o, g, quoteRaw)
}

func encodeRecord(s, p, o, g Term, quote func(string) string) Record {
	r := Record{
		renderResource(s, quote),
		renderResource(p, quote),
		"",
		emptyToken,
		emptyToken,
		renderGraph(g, quote),
	}
	switch obj := o.(type) {
	case Literal:
		r[2] = renderLiteralValue(obj, quote)
		datatype := obj.Datatype.Value
		if datatype == "" {
			datatype = XSDString
		}
		r[3] = quote(datatype)
		if obj.Lang != "" {
			r[4] = quote(obj.Lang)
		}
	default:
		r[2] = renderResource(o, quote)
	}
	return r
}

// renderResource renders an IRI or blank node. Anything else is rendered
// from its String form so that no statement is rejected.
func renderResource(t Term, quote func(string) string) string {
	switch v := t.(type) {
	case nil:
		return emptyToken
	case IRI:
		return quote(v.Value)
	case BlankNode:
		return quote(v.N3())
	default:
		return quote(t.String())
	}
}

// renderGraph suppresses missing graphs and transient labels: blank-node
// style identifiers ("_...") and file:// origins.
//
// The prefix test runs on the term's String form. For a BlankNode that is
// its N3 form "_:id", so graphs named by blank nodes are always suppressed,
// including the generated default graph of a MemoryDataset.
func renderGraph(g Term, quote func(string) string) string {
	if g == nil {
		return emptyToken
	}
	text := g.String()
	if strings.HasPrefix(text, "_") || strings.HasPrefix(text, "file://") {
		return emptyToken
	}
	return renderResource(g, quote)
}

// renderLiteralValue writes numeric and boolean literals as bare tokens.
// Without a datatype, the lexical forms "true" and "false" are bare too.
func renderLiteralValue(l Literal, quote func(string) string) string {
	switch {
	case l.HasDatatype() && IsRawDatatype(l.Datatype.Value):
		return l.Lexical
	case l.HasDatatype():
		return quote(l.Lexical)
	case l.Lexical == "true" || l.Lexical == "false":
		return l.Lexical
	default:
		return quote(l.Lexical)
	}
}

func quoteRaw(s string) string { return `"` + s + `"` }

// quoteJSON quotes s as a JSON string. Non-ASCII text is kept as UTF-8.
func quoteJSON(s string) string {
	const hex = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// HextuplesWriter writes one Hextuples line per quad to an io.Writer.
//
// Each line goes to the underlying writer as soon as it is encoded; the
// writer is never buffered beyond one record and never closed. After a write
// failure every later call returns the same error.
type HextuplesWriter struct {
	w       io.Writer
	quote   func(string) string
	buf     []byte
	records int64
	err     error
}

// NewHextuplesWriter returns a writer emitting to w. Warnings about ignored
// options (base IRI, non-UTF-8 encoding) are reported here, once.
func NewHextuplesWriter(w io.Writer, opts ...Option) *HextuplesWriter {
	options := buildOptions(opts)
	checkOptions(options)
	quote := quoteRaw
	if options.EscapeStrings {
		quote = quoteJSON
	}
	return &HextuplesWriter{w: w, quote: quote}
}

// Write encodes q. A nil graph name writes an empty graph field.
func (e *HextuplesWriter) Write(q Quad) error {
	return e.WriteRecord(encodeRecord(q.S, q.P, q.O, q.G, e.quote))
}

// WriteRecord writes an already encoded record.
func (e *HextuplesWriter) WriteRecord(r Record) error {
	if e.err != nil {
		return e.err
	}
	e.buf = r.appendLine(e.buf[:0])
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = err
		return err
	}
	e.records++
	return nil
}

// Records returns the number of lines written.
func (e *HextuplesWriter) Records() int64 { return e.records }

// Flush returns the sticky write error, if any. Nothing is buffered.
func (e *HextuplesWriter) Flush() error { return e.err }

// Close returns the sticky write error, if any. The underlying writer is
// left open.
func (e *HextuplesWriter) Close() error { return e.err }

// Serialize writes every statement of src to w in Hextuples format.
//
// Statements are streamed one line at a time. Errors from src or w are
// returned unchanged; w is neither flushed nor closed.
func Serialize(w io.Writer, src Source, opts ...Option) error {
	if src == nil {
		return ErrNilSource
	}
	enc := NewHextuplesWriter(w, opts...)
	return EnumerateContexts(src, func(g Term, t Triple) error {
		return enc.Write(t.ToQuadInGraph(g))
	})
}
