// Package dom defines the document tree produced by the markup parser and
// consumed by the style resolver.
package dom

import "strings"

// NodeType discriminates the two node variants.
type NodeType int

const (
	TextNode NodeType = iota
	ElementNode
)

// Node is one node of the document tree. A node exclusively owns its
// children; the tree has no cycles, no shared subtrees and no parent
// back-references. Nodes are immutable once the parser returns them.
type Node struct {
	Type     NodeType
	Text     string      // set for TextNode
	Data     ElementData // set for ElementNode
	Children []*Node
}

// ElementData carries an element's tag name and attribute map.
type ElementData struct {
	TagName    string
	Attributes map[string]string
}

// NewText wraps a text run as a leaf node.
func NewText(content string) *Node {
	return &Node{Type: TextNode, Text: content}
}

// NewElement builds an element node over its children.
func NewElement(tag string, attrs map[string]string, children []*Node) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Node{
		Type:     ElementNode,
		Data:     ElementData{TagName: tag, Attributes: attrs},
		Children: children,
	}
}

// ID returns the element's "id" attribute, and whether one is present.
func (e ElementData) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	return id, ok
}

// Classes returns the whitespace-split tokens of the "class" attribute as a
// set. Elements without a class attribute yield an empty set.
func (e ElementData) Classes() map[string]struct{} {
	classes := map[string]struct{}{}
	for _, token := range strings.Fields(e.Attributes["class"]) {
		classes[token] = struct{}{}
	}
	return classes
}
