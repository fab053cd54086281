// Package styletree is the public entry point: parse markup, parse a
// stylesheet, resolve styles. A host program supplies the text and consumes
// the styled tree; loading and rendering stay outside this package.
package styletree

import (
	"github.com/xkilldash9x/styletree/internal/css"
	"github.com/xkilldash9x/styletree/internal/dom"
	"github.com/xkilldash9x/styletree/internal/markup"
	"github.com/xkilldash9x/styletree/internal/style"
)

// Re-exported tree and stylesheet types.
type (
	Node        = dom.Node
	ElementData = dom.ElementData
	Stylesheet  = css.Stylesheet
	Rule        = css.Rule
	Selector    = css.Selector
	Specificity = css.Specificity
	Declaration = css.Declaration
	Value       = css.Value
	Keyword     = css.Keyword
	Size        = css.Size
	Color       = css.Color
	Unit        = css.Unit
	StyledNode  = style.StyledNode
	PropertyMap = style.PropertyMap
)

// ParseMarkup parses markup text into a document tree. The whole input is
// rejected on the first grammar violation.
func ParseMarkup(text string) (*Node, error) {
	return markup.Parse(text)
}

// ParseStylesheet parses stylesheet text into an ordered rule list.
func ParseStylesheet(text string) (Stylesheet, error) {
	return css.Parse(text)
}

// ResolveStyles maps a document tree and a stylesheet to a styled tree. It
// never fails given parser outputs.
func ResolveStyles(root *Node, sheet Stylesheet) *StyledNode {
	return style.StyleTree(root, sheet)
}
