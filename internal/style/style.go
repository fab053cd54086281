// Package style resolves effective style properties for a document tree by
// selector matching and cascade.
package style

import (
	"sort"

	"github.com/xkilldash9x/styletree/internal/css"
	"github.com/xkilldash9x/styletree/internal/dom"
)

// PropertyMap holds an element's resolved declarations, property name to
// value, last writer wins.
type PropertyMap map[string]css.Value

// StyledNode mirrors one document node together with its resolved
// properties. The styled tree always has the same shape as its source tree
// and is immutable once built.
type StyledNode struct {
	Node       *dom.Node
	Properties PropertyMap
	Children   []*StyledNode
}

// Matches reports whether a simple selector matches an element. All three
// checks must hold: the selector's tag is absent or equal, its id is absent
// or equal (an element without an "id" attribute never satisfies an
// id-bearing selector), and every selector class is present on the element.
func Matches(element dom.ElementData, selector css.Selector) bool {
	if selector.Tag != "" && selector.Tag != element.TagName {
		return false
	}
	if selector.ID != "" {
		id, ok := element.ID()
		if !ok || id != selector.ID {
			return false
		}
	}
	classes := element.Classes()
	for _, required := range selector.Classes {
		if _, ok := classes[required]; !ok {
			return false
		}
	}
	return true
}

// MatchedRule pairs a rule with the specificity of the selector that matched
// it for a particular element.
type MatchedRule struct {
	Specificity css.Specificity
	Rule        *css.Rule
}

// MatchingRules scans the stylesheet in source order and collects each rule
// whose selector list matches the element. The first matching selector in a
// rule's list decides the specificity; a rule contributes at most once per
// element even when several of its selectors match.
func MatchingRules(element dom.ElementData, sheet css.Stylesheet) []MatchedRule {
	var matched []MatchedRule
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		for _, selector := range rule.Selectors {
			if Matches(element, selector) {
				matched = append(matched, MatchedRule{
					Specificity: selector.Specificity(),
					Rule:        rule,
				})
				break
			}
		}
	}
	return matched
}

// Cascade folds every matching rule's declarations into a property map.
// Rules apply in ascending specificity order; the sort is stable, so rules
// of equal specificity keep their stylesheet order and later declarations
// overwrite earlier ones for the same property.
func Cascade(element dom.ElementData, sheet css.Stylesheet) PropertyMap {
	matched := MatchingRules(element, sheet)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity.Less(matched[j].Specificity)
	})

	properties := PropertyMap{}
	for _, m := range matched {
		for _, decl := range m.Rule.Declarations {
			properties[decl.Property] = decl.Value
		}
	}
	return properties
}

// StyleTree resolves the whole document against a stylesheet. Text nodes get
// an empty property map and no children; elements get their cascade result
// and recursively styled children in source order. The function is pure, so
// independent subtrees may be resolved in parallel by an embedding caller.
func StyleTree(node *dom.Node, sheet css.Stylesheet) *StyledNode {
	styled := &StyledNode{Node: node, Properties: PropertyMap{}}
	if node.Type != dom.ElementNode {
		return styled
	}

	styled.Properties = Cascade(node.Data, sheet)
	styled.Children = make([]*StyledNode, len(node.Children))
	for i, child := range node.Children {
		styled.Children[i] = StyleTree(child, sheet)
	}
	return styled
}

// Lookup returns the string form of a resolved property, or fallback when
// the element has no value for it.
func (sn *StyledNode) Lookup(property, fallback string) string {
	if value, ok := sn.Properties[property]; ok {
		return value.String()
	}
	return fallback
}

// DisplayType is the layout mode a styled node asks for.
type DisplayType int

const (
	DisplayInline DisplayType = iota
	DisplayBlock
	DisplayNone
)

// Display maps the resolved "display" keyword to a layout mode. Text nodes
// and elements without a display property are inline.
func (sn *StyledNode) Display() DisplayType {
	if sn.Node.Type == dom.TextNode {
		return DisplayInline
	}
	switch sn.Lookup("display", "inline") {
	case "block":
		return DisplayBlock
	case "none":
		return DisplayNone
	default:
		return DisplayInline
	}
}
