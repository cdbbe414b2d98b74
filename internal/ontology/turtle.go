package ontology

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseTurtle parses a Turtle document. Supported subset: @prefix and
// @base directives, predicate lists (';'), object lists (','), the 'a'
// keyword, IRIs, prefixed names, and string / numeric / boolean
// literals with optional datatype or language tag. Blank nodes,
// collections and triple-quoted strings are not supported.
func ParseTurtle(src string) (*Graph, error) {
	p := &ttlParser{src: src, line: 1, prefixes: make(map[string]string)}
	triples, err := p.parse()
	if err != nil {
		return nil, err
	}
	return newGraph(triples), nil
}

type ttlParser struct {
	src      string
	pos      int
	line     int
	base     string
	prefixes map[string]string
}

func (p *ttlParser) errf(format string, args ...any) error {
	return fmt.Errorf("turtle: line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *ttlParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *ttlParser) peek() byte {
	return p.src[p.pos]
}

func (p *ttlParser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

// skipSpace consumes whitespace and '#' comments.
func (p *ttlParser) skipSpace() {
	for !p.eof() {
		c := p.peek()
		switch {
		case c == '#':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		case unicode.IsSpace(rune(c)):
			p.next()
		default:
			return
		}
	}
}

func (p *ttlParser) parse() ([]Triple, error) {
	var triples []Triple
	for {
		p.skipSpace()
		if p.eof() {
			return triples, nil
		}
		if p.peek() == '@' {
			if err := p.directive(); err != nil {
				return nil, err
			}
			continue
		}
		ts, err := p.statement()
		if err != nil {
			return nil, err
		}
		triples = append(triples, ts...)
	}
}

func (p *ttlParser) directive() error {
	word := p.readName()
	switch word {
	case "@prefix":
		p.skipSpace()
		name := p.readName()
		if !strings.HasSuffix(name, ":") {
			return p.errf("prefix name %q must end with ':'", name)
		}
		p.skipSpace()
		iri, err := p.readIRIRef()
		if err != nil {
			return err
		}
		p.prefixes[strings.TrimSuffix(name, ":")] = iri
	case "@base":
		p.skipSpace()
		iri, err := p.readIRIRef()
		if err != nil {
			return err
		}
		p.base = iri
	default:
		return p.errf("unknown directive %q", word)
	}
	p.skipSpace()
	if p.eof() || p.peek() != '.' {
		return p.errf("expected '.' after directive")
	}
	p.next()
	return nil
}

func (p *ttlParser) statement() ([]Triple, error) {
	subject, err := p.readResource()
	if err != nil {
		return nil, err
	}

	var out []Triple
	for {
		p.skipSpace()
		predicate, err := p.readPredicate()
		if err != nil {
			return nil, err
		}

		for {
			p.skipSpace()
			object, err := p.readObject()
			if err != nil {
				return nil, err
			}
			out = append(out, Triple{Subject: subject, Predicate: predicate, Object: object})

			p.skipSpace()
			if !p.eof() && p.peek() == ',' {
				p.next()
				continue
			}
			break
		}

		p.skipSpace()
		if !p.eof() && p.peek() == ';' {
			p.next()
			p.skipSpace()
			// A dangling ';' directly before the terminating '.' is legal.
			if !p.eof() && p.peek() == '.' {
				break
			}
			continue
		}
		break
	}

	p.skipSpace()
	if p.eof() || p.peek() != '.' {
		return nil, p.errf("expected '.' at end of statement")
	}
	p.next()
	return out, nil
}

// readPredicate handles the 'a' shorthand for rdf:type.
func (p *ttlParser) readPredicate() (string, error) {
	if !p.eof() && p.peek() == 'a' {
		if p.pos+1 >= len(p.src) || unicode.IsSpace(rune(p.src[p.pos+1])) {
			p.next()
			return RDFType, nil
		}
	}
	return p.readResource()
}

// readResource reads an IRI reference or prefixed name.
func (p *ttlParser) readResource() (string, error) {
	if p.eof() {
		return "", p.errf("unexpected end of input")
	}
	if p.peek() == '<' {
		return p.readIRIRef()
	}
	name := p.readName()
	if name == "" {
		return "", p.errf("expected IRI or prefixed name, found %q", string(p.peek()))
	}
	return p.resolvePrefixed(name)
}

func (p *ttlParser) resolvePrefixed(name string) (string, error) {
	i := strings.Index(name, ":")
	if i < 0 {
		return "", p.errf("expected prefixed name, found %q", name)
	}
	ns, ok := p.prefixes[name[:i]]
	if !ok {
		return "", p.errf("undeclared prefix %q", name[:i])
	}
	return ns + name[i+1:], nil
}

func (p *ttlParser) readObject() (Term, error) {
	if p.eof() {
		return Term{}, p.errf("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '"':
		value, err := p.readStringLiteral()
		if err != nil {
			return Term{}, err
		}
		return Term{Value: value, Literal: true}, nil
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return Term{Value: p.readNumber(), Literal: true}, nil
	case c == '<':
		iri, err := p.readIRIRef()
		if err != nil {
			return Term{}, err
		}
		return Term{Value: iri}, nil
	default:
		name := p.readName()
		if name == "true" || name == "false" {
			return Term{Value: name, Literal: true}, nil
		}
		if name == "" {
			return Term{}, p.errf("unexpected character %q", string(p.peek()))
		}
		iri, err := p.resolvePrefixed(name)
		if err != nil {
			return Term{}, err
		}
		return Term{Value: iri}, nil
	}
}

func (p *ttlParser) readIRIRef() (string, error) {
	if p.eof() || p.peek() != '<' {
		return "", p.errf("expected '<'")
	}
	p.next()
	start := p.pos
	for !p.eof() && p.peek() != '>' {
		if p.peek() == '\n' {
			return "", p.errf("unterminated IRI")
		}
		p.next()
	}
	if p.eof() {
		return "", p.errf("unterminated IRI")
	}
	ref := p.src[start:p.pos]
	p.next()

	// Resolve relative references against @base when present.
	if p.base != "" && !strings.Contains(ref, ":") {
		return p.base + ref, nil
	}
	return ref, nil
}

// readName consumes a run of name characters (prefixed names,
// directives, booleans). '.' is excluded so the statement terminator is
// never swallowed.
func (p *ttlParser) readName() string {
	start := p.pos
	for !p.eof() {
		c := rune(p.peek())
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' || c == ':' || c == '@' {
			p.next()
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *ttlParser) readNumber() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if (c >= '0' && c <= '9') || c == '+' || c == '-' || c == 'e' || c == 'E' {
			p.next()
			continue
		}
		// A '.' is part of the number only when followed by a digit;
		// otherwise it terminates the statement.
		if c == '.' && p.pos+1 < len(p.src) && p.src[p.pos+1] >= '0' && p.src[p.pos+1] <= '9' {
			p.next()
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *ttlParser) readStringLiteral() (string, error) {
	p.next() // opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errf("unterminated string literal")
		}
		c := p.next()
		switch c {
		case '"':
			p.consumeLiteralSuffix()
			return b.String(), nil
		case '\\':
			if p.eof() {
				return "", p.errf("unterminated escape sequence")
			}
			esc := p.next()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\'', '\\':
				b.WriteByte(esc)
			case 'u', 'U':
				width := 4
				if esc == 'U' {
					width = 8
				}
				if p.pos+width > len(p.src) {
					return "", p.errf("truncated unicode escape")
				}
				code, err := strconv.ParseUint(p.src[p.pos:p.pos+width], 16, 32)
				if err != nil {
					return "", p.errf("invalid unicode escape")
				}
				p.pos += width
				b.WriteRune(rune(code))
			default:
				return "", p.errf("unknown escape '\\%c'", esc)
			}
		default:
			b.WriteByte(c)
		}
	}
}

// consumeLiteralSuffix swallows an optional ^^datatype or @lang tag;
// the graph stores plain text either way.
func (p *ttlParser) consumeLiteralSuffix() {
	if p.pos+1 < len(p.src) && p.src[p.pos] == '^' && p.src[p.pos+1] == '^' {
		p.pos += 2
		_, _ = p.readResource()
		return
	}
	if !p.eof() && p.peek() == '@' {
		p.readName()
	}
}
