// Package messageformat parses the single-brace interpolation grammar used
// by the locale catalogs: plain text, `{name}` arguments, `{name, number}`
// (and date/time) formatted arguments, `{name, plural, ...}` and
// `{name, select, ...}` constructs with recursively parsed case bodies, and
// inline tag markers `<name>...</name>` / `<name/>`.
package messageformat

import "fmt"

// SyntaxError describes the first malformed construct found in a message.
type SyntaxError struct {
	Pos int // byte offset into the message
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("char %d: %s", e.Pos, e.Msg)
}

// Parse parses a whole message. Plain text always parses; a nil error
// guarantees the returned nodes cover the full input.
func Parse(message string) ([]Node, error) {
	p := &parser{src: message}
	return p.parseMessage(false, "")
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// parseMessage consumes nodes until end of input, or until an unconsumed
// stop token: '}' when inCase is set, "</" when insideTag is set. The stop
// token is left for the caller to consume.
func (p *parser) parseMessage(inCase bool, insideTag string) ([]Node, error) {
	nodes := []Node{}
	textStart := p.pos
	flush := func(end int) {
		if end > textStart {
			nodes = append(nodes, Text{Value: p.src[textStart:end]})
		}
	}

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			flush(p.pos)
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, arg)
			textStart = p.pos
		case '}':
			if inCase {
				flush(p.pos)
				return nodes, nil
			}
			return nil, p.errf(p.pos, "unexpected '}' outside of a plural or select case")
		case '<':
			if p.hasPrefix("</") {
				if insideTag == "" {
					return nil, p.errf(p.pos, "closing tag without a matching opening tag")
				}
				flush(p.pos)
				return nodes, nil
			}
			if !isNameStart(p.peekAt(p.pos + 1)) {
				// A literal '<' (comparison sign, arrows, ...), not a tag.
				p.pos++
				continue
			}
			flush(p.pos)
			tag, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, tag)
			textStart = p.pos
		default:
			p.pos++
		}
	}

	if inCase {
		return nil, p.errf(p.pos, "unterminated case body, expected '}'")
	}
	if insideTag != "" {
		return nil, p.errf(p.pos, "missing closing tag </%s>", insideTag)
	}
	flush(p.pos)
	return nodes, nil
}

// parseArgument parses everything starting at '{': a simple or typed
// argument, or a plural/select construct.
func (p *parser) parseArgument() (Node, error) {
	open := p.pos
	p.pos++ // '{'
	p.skipSpace()
	if p.peek() == '{' {
		return nil, p.errf(p.pos, "'{{' is not a valid interpolation, use a single brace")
	}
	name, err := p.ident("argument name")
	if err != nil {
		return nil, err
	}
	p.skipSpace()

	switch p.peek() {
	case '}':
		p.pos++
		return Argument{Name: name}, nil
	case ',':
		p.pos++
	default:
		return nil, p.errf(p.pos, "expected '}' or ',' after argument name %q", name)
	}

	p.skipSpace()
	kindPos := p.pos
	kind, err := p.ident("argument type")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "number", "date", "time":
		p.skipSpace()
		if p.peek() != '}' {
			return nil, p.errf(p.pos, "expected '}' after {%s, %s", name, kind)
		}
		p.pos++
		return Argument{Name: name, Type: ArgType(kind)}, nil
	case "plural", "select":
		p.skipSpace()
		if p.peek() != ',' {
			return nil, p.errf(p.pos, "expected ',' before %s cases", kind)
		}
		p.pos++
		cases, err := p.parseCases(kind, open)
		if err != nil {
			return nil, err
		}
		if kind == "plural" {
			return Plural{Name: name, Cases: cases}, nil
		}
		return Select{Name: name, Cases: cases}, nil
	default:
		return nil, p.errf(kindPos, "unknown argument type %q", kind)
	}
}

// parseCases parses `label {body} ... }` branches for a plural or select
// construct and enforces the mandatory `other` case.
func (p *parser) parseCases(kind string, open int) ([]Case, error) {
	var cases []Case
	hasOther := false
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf(p.pos, "unterminated %s construct", kind)
		}
		if p.peek() == '}' {
			p.pos++
			if len(cases) == 0 {
				return nil, p.errf(open, "%s construct has no cases", kind)
			}
			if !hasOther {
				return nil, p.errf(open, "%s construct is missing the mandatory \"other\" case", kind)
			}
			return cases, nil
		}

		label, err := p.caseLabel(kind)
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != '{' {
			return nil, p.errf(p.pos, "expected '{' after case label %q", label)
		}
		p.pos++
		body, err := p.parseMessage(true, "")
		if err != nil {
			return nil, err
		}
		// parseMessage stopped at the closing brace.
		p.pos++
		cases = append(cases, Case{Label: label, Body: body})
		if label == "other" {
			hasOther = true
		}
	}
}

// caseLabel reads a case selector: a keyword/category name, or `=N` exact
// matches for plurals.
func (p *parser) caseLabel(kind string) (string, error) {
	if p.peek() == '=' {
		if kind != "plural" {
			return "", p.errf(p.pos, "exact matches are only valid in plural constructs")
		}
		start := p.pos
		p.pos++
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == start+1 {
			return "", p.errf(start, "expected digits after '='")
		}
		return p.src[start:p.pos], nil
	}
	return p.ident("case label")
}

// parseTag parses `<name/>` or `<name>children</name>` starting at '<'.
func (p *parser) parseTag() (Node, error) {
	p.pos++ // '<'
	name, err := p.ident("tag name")
	if err != nil {
		return nil, err
	}
	if p.hasPrefix("/>") {
		p.pos += 2
		return Tag{Name: name, SelfClosing: true}, nil
	}
	if p.peek() != '>' {
		return nil, p.errf(p.pos, "expected '>' or '/>' in tag <%s", name)
	}
	p.pos++

	children, err := p.parseMessage(false, name)
	if err != nil {
		return nil, err
	}
	// parseMessage stopped at "</".
	closePos := p.pos
	p.pos += 2
	closeName, err := p.ident("closing tag name")
	if err != nil {
		return nil, err
	}
	if p.peek() != '>' {
		return nil, p.errf(p.pos, "expected '>' in closing tag </%s", closeName)
	}
	p.pos++
	if closeName != name {
		return nil, p.errf(closePos, "mismatched closing tag </%s>, expected </%s>", closeName, name)
	}
	return Tag{Name: name, Children: children}, nil
}

// ident reads an identifier: a letter or underscore followed by letters,
// digits, underscores or hyphens.
func (p *parser) ident(what string) (string, error) {
	start := p.pos
	if !isNameStart(p.peek()) {
		return "", p.errf(p.pos, "expected %s", what)
	}
	p.pos++
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) peek() byte {
	return p.peekAt(p.pos)
}

func (p *parser) peekAt(i int) byte {
	if i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *parser) hasPrefix(s string) bool {
	return len(p.src)-p.pos >= len(s) && p.src[p.pos:p.pos+len(s)] == s
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c) || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
