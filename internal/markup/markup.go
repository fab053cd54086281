// Package markup parses the minimal markup grammar into a document tree.
//
// The grammar is strict: every opened tag needs an exactly-matching closing
// tag, attribute values are quoted alnum runs, and there are no entities,
// comments or self-closing shorthands. Any violation rejects the whole input.
package markup

import (
	"errors"
	"fmt"

	"github.com/xkilldash9x/styletree/internal/dom"
	"github.com/xkilldash9x/styletree/internal/scan"
)

var (
	// ErrUnexpectedEOF is returned when the input ends inside a structural
	// construct that still needs its terminator.
	ErrUnexpectedEOF = errors.New("markup: unexpected end of input")
	// ErrMalformedAttribute is returned on a missing '=' or a missing or
	// mismatched quote around an attribute value.
	ErrMalformedAttribute = errors.New("markup: malformed attribute")
	// ErrUnclosedTag is returned when the closing text of an element is not
	// exactly "</" + the opening tag name + ">".
	ErrUnclosedTag = errors.New("markup: unclosed or mismatched tag")
)

// Parse builds a document tree from text. It parses exactly one top-level
// node; callers with multiple top-level siblings must pre-wrap their input in
// a synthetic root element.
func Parse(text string) (*dom.Node, error) {
	p := &parser{scan: scan.New(text)}
	return p.parseNode()
}

type parser struct {
	scan *scan.Scanner
}

func (p *parser) parseNode() (*dom.Node, error) {
	p.scan.SkipWhitespace()
	ch, err := p.scan.Peek()
	if err != nil {
		return nil, fmt.Errorf("expected a node: %w", ErrUnexpectedEOF)
	}
	if ch == '<' {
		return p.parseElement()
	}
	return p.parseText(), nil
}

func (p *parser) parseText() *dom.Node {
	content := p.scan.ConsumeWhile(func(ch byte) bool { return ch != '<' })
	return dom.NewText(content)
}

// parseTagName consumes an ASCII alnum run. Namespaces, hyphens and colons
// are not part of the grammar.
func (p *parser) parseTagName() string {
	return p.scan.ConsumeWhile(isAlnum)
}

func (p *parser) parseElement() (*dom.Node, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	tag := p.parseTagName()

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}

	children, err := p.parseElements()
	if err != nil {
		return nil, fmt.Errorf("inside <%s>: %w", tag, err)
	}

	// The children loop stops only when the input starts with "</", so what
	// follows must be the exact closing sequence for this element.
	closing := "</" + tag + ">"
	if !p.scan.StartsWith(closing) {
		return nil, fmt.Errorf("element <%s>: %w", tag, ErrUnclosedTag)
	}
	for range closing {
		if _, err := p.scan.Advance(); err != nil {
			return nil, fmt.Errorf("element <%s>: %w", tag, ErrUnexpectedEOF)
		}
	}

	return dom.NewElement(tag, attrs, children), nil
}

func (p *parser) parseElements() ([]*dom.Node, error) {
	var children []*dom.Node
	for {
		p.scan.SkipWhitespace()
		if p.scan.AtEnd() {
			return nil, fmt.Errorf("missing closing tag: %w", ErrUnexpectedEOF)
		}
		if p.scan.StartsWith("</") {
			return children, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *parser) parseAttributes() (map[string]string, error) {
	attrs := map[string]string{}
	for {
		p.scan.SkipWhitespace()
		ch, err := p.scan.Peek()
		if err != nil {
			return nil, fmt.Errorf("in tag: %w", ErrUnexpectedEOF)
		}
		if ch == '>' {
			return attrs, nil
		}
		name, value, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		// Repeated names overwrite, last one wins.
		attrs[name] = value
	}
}

func (p *parser) parseAttribute() (name, value string, err error) {
	name = p.parseTagName()

	ch, err := p.scan.Advance()
	if err != nil {
		return "", "", fmt.Errorf("attribute %q: %w", name, ErrUnexpectedEOF)
	}
	if ch != '=' {
		return "", "", fmt.Errorf("attribute %q missing '=': %w", name, ErrMalformedAttribute)
	}

	quote, err := p.scan.Advance()
	if err != nil {
		return "", "", fmt.Errorf("attribute %q: %w", name, ErrUnexpectedEOF)
	}
	if quote != '\'' && quote != '"' {
		return "", "", fmt.Errorf("attribute %q missing opening quote: %w", name, ErrMalformedAttribute)
	}

	value = p.scan.ConsumeWhile(isAlnum)

	closing, err := p.scan.Advance()
	if err != nil {
		return "", "", fmt.Errorf("attribute %q: %w", name, ErrUnexpectedEOF)
	}
	if closing != quote {
		return "", "", fmt.Errorf("attribute %q quote mismatch: %w", name, ErrMalformedAttribute)
	}
	return name, value, nil
}

func (p *parser) expect(want byte) error {
	ch, err := p.scan.Advance()
	if err != nil {
		return fmt.Errorf("expected %q: %w", want, ErrUnexpectedEOF)
	}
	if ch != want {
		return fmt.Errorf("expected %q, found %q: %w", want, ch, ErrUnclosedTag)
	}
	return nil
}

func isAlnum(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
