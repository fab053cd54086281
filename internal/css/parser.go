package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xkilldash9x/styletree/internal/scan"
)

var (
	// ErrInvalidColor is returned when a '#'-led value is not exactly six
	// hex digits.
	ErrInvalidColor = errors.New("css: invalid color literal")
	// ErrInvalidNumber is returned when the numeric portion of a size value
	// fails to parse.
	ErrInvalidNumber = errors.New("css: invalid number")
	// ErrMalformedDeclaration is returned on a declaration missing its ':'
	// or its terminating ';'.
	ErrMalformedDeclaration = errors.New("css: malformed declaration")
	// ErrUnterminatedBlock is returned when a declaration block is missing
	// its braces.
	ErrUnterminatedBlock = errors.New("css: unterminated declaration block")
)

// Parse builds a Stylesheet from text. Rules keep their source order.
func Parse(text string) (Stylesheet, error) {
	p := &parser{scan: scan.New(text)}

	var sheet Stylesheet
	for {
		p.scan.SkipWhitespace()
		if p.scan.AtEnd() {
			return sheet, nil
		}
		rule, err := p.parseRule()
		if err != nil {
			return Stylesheet{}, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
}

// ParseValue classifies a declaration's raw text. A leading '#' demands a
// six-digit hex color, a leading ASCII digit demands a number with an
// optional known unit suffix, and anything else passes through verbatim as a
// Keyword.
func ParseValue(raw string) (Value, error) {
	if strings.HasPrefix(raw, "#") {
		return parseColor(raw)
	}
	if len(raw) > 0 && isDigit(raw[0]) {
		return parseSize(raw)
	}
	return Keyword(raw), nil
}

func parseColor(raw string) (Value, error) {
	hex := raw[1:]
	if len(hex) != 6 {
		return nil, fmt.Errorf("%q is not a 6-digit hex color: %w", raw, ErrInvalidColor)
	}
	var rgb [3]uint8
	for i := range rgb {
		component, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%q has a non-hex digit: %w", raw, ErrInvalidColor)
		}
		rgb[i] = uint8(component)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Suffixes are tested in this order so "rem" is not misread as "em".
var sizeUnits = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPx},
	{"%", UnitPercent},
	{"rem", UnitRem},
	{"em", UnitEm},
}

func parseSize(raw string) (Value, error) {
	numText := raw
	unit := UnitNone
	for _, candidate := range sizeUnits {
		if strings.HasSuffix(raw, candidate.suffix) {
			numText = strings.TrimSuffix(raw, candidate.suffix)
			unit = candidate.unit
			break
		}
	}
	amount, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, ErrInvalidNumber)
	}
	return Size{Amount: amount, Unit: unit}, nil
}

type parser struct {
	scan *scan.Scanner
}

func (p *parser) parseRule() (Rule, error) {
	selectors, err := p.parseSelectorList()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := p.parseDeclarationBlock()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

func (p *parser) parseSelectorList() ([]Selector, error) {
	var selectors []Selector
	for {
		p.scan.SkipWhitespace()
		selectors = append(selectors, p.parseSelector())
		p.scan.SkipWhitespace()

		ch, err := p.scan.Peek()
		if err != nil || ch != ',' {
			return selectors, nil
		}
		p.scan.Advance()
	}
}

func (p *parser) parseSelector() Selector {
	var sel Selector
	for !p.scan.AtEnd() {
		ch, _ := p.scan.Peek()
		switch {
		case ch == '#':
			p.scan.Advance()
			// A repeated id keeps the last occurrence.
			sel.ID = p.parseIdentifier()
		case ch == '.':
			p.scan.Advance()
			sel.Classes = append(sel.Classes, p.parseIdentifier())
		case isIdentStart(ch):
			tag := p.parseIdentifier()
			if sel.Tag == "" {
				sel.Tag = tag
			}
		default:
			// Whitespace, ',', '{' or anything else ends the selector.
			return sel
		}
	}
	return sel
}

func (p *parser) parseDeclarationBlock() ([]Declaration, error) {
	ch, err := p.scan.Advance()
	if err != nil || ch != '{' {
		return nil, fmt.Errorf("expected '{': %w", ErrUnterminatedBlock)
	}

	var declarations []Declaration
	for {
		p.scan.SkipWhitespace()
		ch, err := p.scan.Peek()
		if err != nil {
			return nil, fmt.Errorf("missing '}': %w", ErrUnterminatedBlock)
		}
		if ch == '}' {
			p.scan.Advance()
			return declarations, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)
	}
}

func (p *parser) parseDeclaration() (Declaration, error) {
	name := p.parseIdentifier()

	p.scan.SkipWhitespace()
	ch, err := p.scan.Advance()
	if err != nil || ch != ':' {
		return Declaration{}, fmt.Errorf("property %q missing ':': %w", name, ErrMalformedDeclaration)
	}
	p.scan.SkipWhitespace()

	raw := p.scan.ConsumeWhile(func(ch byte) bool { return ch != ';' })
	if _, err := p.scan.Advance(); err != nil {
		return Declaration{}, fmt.Errorf("property %q missing ';': %w", name, ErrMalformedDeclaration)
	}

	value, err := ParseValue(raw)
	if err != nil {
		return Declaration{}, fmt.Errorf("property %q: %w", name, err)
	}
	return Declaration{Property: name, Value: value}, nil
}

// parseIdentifier consumes letters, digits, '-' and '_'.
func (p *parser) parseIdentifier() string {
	return p.scan.ConsumeWhile(isIdentChar)
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
