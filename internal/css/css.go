// Package css parses the minimal stylesheet grammar into an ordered rule
// list and defines the value model the cascade resolves against.
package css

import "fmt"

// Stylesheet is the ordered list of rules of one stylesheet. Rule order is
// the source order and is significant: the cascade uses it to break
// equal-specificity ties.
type Stylesheet struct {
	Rules []Rule
}

// Rule pairs a selector list with its declaration block. The selectors are
// OR-matched against an element.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Selector is a simple selector: optional tag, optional id and a set of
// required class tokens. Empty strings mean the component is absent.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// Specificity is the (id, class count, tag) precedence weight of a selector,
// compared lexicographically with id the most significant field.
type Specificity struct {
	A, B, C int
}

// Specificity computes the selector's precedence weight.
func (s Selector) Specificity() Specificity {
	spec := Specificity{B: len(s.Classes)}
	if s.ID != "" {
		spec.A = 1
	}
	if s.Tag != "" {
		spec.C = 1
	}
	return spec
}

// Less reports whether s ranks strictly below other.
func (s Specificity) Less(other Specificity) bool {
	if s.A != other.A {
		return s.A < other.A
	}
	if s.B != other.B {
		return s.B < other.B
	}
	return s.C < other.C
}

// Declaration is one "property: value" pair.
type Declaration struct {
	Property string
	Value    Value
}

// Value is a declaration value: a Keyword, a Size or a Color.
type Value interface {
	isValue()
	fmt.Stringer
}

// Keyword holds a value's raw text verbatim, embedded whitespace included.
type Keyword string

// Size is a numeric value with an optional unit.
type Size struct {
	Amount float64
	Unit   Unit
}

// Color is an opaque RGB color from a 6-digit hex literal.
type Color struct {
	R, G, B uint8
}

func (Keyword) isValue() {}
func (Size) isValue()    {}
func (Color) isValue()   {}

func (k Keyword) String() string { return string(k) }

func (s Size) String() string {
	return fmt.Sprintf("%g%s", s.Amount, s.Unit)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Unit is the unit of a Size value. Units are stored, never resolved against
// any context.
type Unit int

const (
	UnitNone Unit = iota
	UnitPx
	UnitPercent
	UnitEm
	UnitRem
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPercent:
		return "%"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	default:
		return ""
	}
}
