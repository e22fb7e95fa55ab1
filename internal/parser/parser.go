// Package parser reads context tables in the textual record format
//
//	object : attr attr attr ;
//
// Comments begin with '#', '--' or '%' and run to end of line. An
// identifier is a non-empty run of characters excluding ':', ';' and
// whitespace; a blank attribute list is allowed. Identifiers are
// NFC-normalized so that visually identical names are the same element
// regardless of how the input encoded them.
package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/galois/internal/fca"
)

// Record is one parsed line: an object and its attribute list.
type Record struct {
	Object string
	Attrs  []string
}

// ParseError reports malformed input at a byte offset.
type ParseError struct {
	Offset int
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d (line %d): %s", e.Offset, e.Line, e.Msg)
}

type tokenKind int

const (
	tokIdent tokenKind = iota + 1
	tokColon
	tokSemi
	tokEOF
)

type token struct {
	kind   tokenKind
	text   string
	offset int
	line   int
}

type lexer struct {
	input []byte
	pos   int
	line  int
}

func newLexer(input []byte) *lexer {
	return &lexer{input: input, line: 1}
}

// skip consumes whitespace and comments.
func (l *lexer) skip() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#' || c == '%':
			l.skipToEOL()
		case c == '-' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '-':
			l.skipToEOL()
		default:
			r, size := utf8.DecodeRune(l.input[l.pos:])
			if !unicode.IsSpace(r) {
				return
			}
			l.pos += size
		}
	}
}

func (l *lexer) skipToEOL() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

// next returns the next token. Comment starts are only recognized at
// token boundaries, so "a#b" is one identifier while " #b" is a comment.
func (l *lexer) next() token {
	l.skip()
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, offset: l.pos, line: l.line}
	}
	start, line := l.pos, l.line
	switch l.input[l.pos] {
	case ':':
		l.pos++
		return token{kind: tokColon, text: ":", offset: start, line: line}
	case ';':
		l.pos++
		return token{kind: tokSemi, text: ";", offset: start, line: line}
	}
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if r == ':' || r == ';' || unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	text := norm.NFC.String(string(l.input[start:l.pos]))
	return token{kind: tokIdent, text: text, offset: start, line: line}
}

// Parse reads every record of a context table.
func Parse(input []byte) ([]Record, error) {
	l := newLexer(input)
	var records []Record
	for {
		tok := l.next()
		if tok.kind == tokEOF {
			return records, nil
		}
		if tok.kind != tokIdent {
			return nil, &ParseError{Offset: tok.offset, Line: tok.line,
				Msg: fmt.Sprintf("expected object name, got %q", tok.text)}
		}
		rec := Record{Object: tok.text}
		if tok = l.next(); tok.kind != tokColon {
			return nil, &ParseError{Offset: tok.offset, Line: tok.line,
				Msg: fmt.Sprintf("expected ':' after object %q", rec.Object)}
		}
		for {
			tok = l.next()
			switch tok.kind {
			case tokIdent:
				rec.Attrs = append(rec.Attrs, tok.text)
			case tokSemi:
				records = append(records, rec)
			case tokEOF:
				return nil, &ParseError{Offset: tok.offset, Line: tok.line,
					Msg: fmt.Sprintf("unterminated record for object %q (missing ';')", rec.Object)}
			default:
				return nil, &ParseError{Offset: tok.offset, Line: tok.line,
					Msg: fmt.Sprintf("unexpected %q in attribute list", tok.text)}
			}
			if tok.kind == tokSemi {
				break
			}
		}
	}
}

// Build constructs a context from parsed records. Objects and attributes
// are indexed by first appearance; repeating an object name merges its
// attribute lists.
func Build(records []Record) (*fca.Context[string, string], error) {
	var (
		objects []string
		attrs   []string
		seenObj = map[string]bool{}
		seenAtt = map[string]bool{}
	)
	for _, rec := range records {
		if !seenObj[rec.Object] {
			seenObj[rec.Object] = true
			objects = append(objects, rec.Object)
		}
		for _, a := range rec.Attrs {
			if !seenAtt[a] {
				seenAtt[a] = true
				attrs = append(attrs, a)
			}
		}
	}
	if len(objects) == 0 {
		return nil, &ParseError{Msg: "no records", Line: 1}
	}
	if len(attrs) == 0 {
		// A context needs a non-empty attribute domain even when every
		// record's list is blank.
		return nil, &ParseError{Msg: "no attributes in any record", Line: 1}
	}
	ident := func(s string) string { return s }
	r, err := fca.New(objects, attrs, ident, ident)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		for _, a := range rec.Attrs {
			if r, err = r.Relate(rec.Object, a); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// ParseContext parses input and builds the context in one step.
func ParseContext(input []byte) (*fca.Context[string, string], error) {
	records, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Build(records)
}
