package rdf

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadNTriples loads an N-Triples document into a plain graph.
func ReadNTriples(r io.Reader, opts ...Option) (*MemoryGraph, error) {
	g := NewGraph(nil)
	err := decodeLines(r, FormatNTriples, buildOptions(opts), func(q Quad) error {
		g.Add(q.ToTriple())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ReadNQuads loads an N-Quads document into a dataset. Statements without a
// graph term go to the default graph.
func ReadNQuads(r io.Reader, opts ...Option) (*MemoryDataset, error) {
	ds := NewDataset()
	err := decodeLines(r, FormatNQuads, buildOptions(opts), func(q Quad) error {
		ds.Add(q)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeLines(r io.Reader, format Format, opts Options, fn func(Quad) error) error {
	dec := &ntDecoder{
		reader:  bufio.NewReader(r),
		format:  format,
		ctx:     opts.Context,
		maxLine: opts.MaxLineBytes,
	}
	for {
		q, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(q); err != nil {
			return err
		}
	}
}

type ntDecoder struct {
	reader  *bufio.Reader
	format  Format
	ctx     context.Context
	maxLine int
	line    int
}

func (d *ntDecoder) Next() (Quad, error) {
	for {
		if err := d.ctx.Err(); err != nil {
			return Quad{}, err
		}
		raw, err := d.readLine()
		if err != nil {
			return Quad{}, err
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quad, err := parseNTLine(line, d.format)
		if err != nil {
			return Quad{}, wrapParseError(string(d.format), line, d.line, 0, err)
		}
		return quad, nil
	}
}

func (d *ntDecoder) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	d.line++
	if d.maxLine > 0 && len(line) > d.maxLine {
		return "", &ParseError{Format: string(d.format), Line: d.line, Err: ErrLineTooLong}
	}
	return line, nil
}

func parseNTLine(line string, format Format) (Quad, error) {
	cursor := &ntCursor{input: line}
	subject, err := cursor.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := cursor.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}

	var graph Term
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '.' {
		if format != FormatNQuads {
			return Quad{}, cursor.errorf("graph term not allowed in N-Triples")
		}
		graph, err = cursor.parseTerm(false)
		if err != nil {
			return Quad{}, err
		}
	}
	if !cursor.consume('.') {
		return Quad{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '#' {
		return Quad{}, cursor.errorf("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

// ntCursor scans one N-Triples/N-Quads statement.
type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token %q", c.input[c.pos])
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	end := strings.IndexByte(c.input[c.pos:], '>')
	if end < 0 {
		return IRI{}, c.errorf("unterminated IRI")
	}
	raw := c.input[c.pos : c.pos+end]
	c.pos += end + 1
	value, err := unescapeUCHAR(raw)
	if err != nil {
		return IRI{}, c.errorf("%v", err)
	}
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A trailing '.' belongs to the statement, not the label.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++ // opening quote
	var builder strings.Builder
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			closed = true
			break
		}
		if ch != '\\' {
			builder.WriteByte(ch)
			c.pos++
			continue
		}
		if c.pos+1 >= len(c.input) {
			return Literal{}, c.errorf("unterminated escape")
		}
		switch next := c.input[c.pos+1]; next {
		case 'n':
			builder.WriteByte('\n')
		case 't':
			builder.WriteByte('\t')
		case 'r':
			builder.WriteByte('\r')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case '"', '\\', '\'':
			builder.WriteByte(next)
		case 'u', 'U':
			size := 4
			if next == 'U' {
				size = 8
			}
			r, err := decodeHexRune(c.input, c.pos+2, size)
			if err != nil {
				return Literal{}, c.errorf("%v", err)
			}
			builder.WriteRune(r)
			c.pos += size
		default:
			return Literal{}, c.errorf("invalid escape \\%c", next)
		}
		c.pos += 2
	}
	if !closed {
		return Literal{}, c.errorf("unterminated literal")
	}
	lit := Literal{Lexical: builder.String()}
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && (isAlphaNum(c.input[c.pos]) || c.input[c.pos] == '-') {
			c.pos++
		}
		if start == c.pos {
			return Literal{}, c.errorf("language tag missing")
		}
		lit.Lang = c.input[start:c.pos]
		return lit, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		lit.Datatype = dt
	}
	return lit, nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return &ParseError{Column: c.pos + 1, Err: fmt.Errorf(format, args...)}
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isAlphaNum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

var errBadUCHAR = errors.New("invalid unicode escape")

func decodeHexRune(s string, start, size int) (rune, error) {
	if start+size > len(s) {
		return 0, errBadUCHAR
	}
	v, err := strconv.ParseUint(s[start:start+size], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, errBadUCHAR
	}
	return rune(v), nil
}

// unescapeUCHAR expands \uXXXX and \UXXXXXXXX sequences in IRIs.
func unescapeUCHAR(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) || (s[i+1] != 'u' && s[i+1] != 'U') {
			return "", errBadUCHAR
		}
		size := 4
		if s[i+1] == 'U' {
			size = 8
		}
		r, err := decodeHexRune(s, i+2, size)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		i += 1 + size
	}
	return b.String(), nil
}
