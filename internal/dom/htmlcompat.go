package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML imports real-world HTML through the error-tolerant golang.org/x/net
// parser and converts it into a document tree the style resolver accepts.
// Comments, doctypes and other non-content nodes are dropped; duplicate
// attributes keep the last occurrence, matching the strict parser.
//
// The strict markup grammar rejects most documents found in the wild, so the
// CLI offers this importer as the lenient loading path.
func FromHTML(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("lenient html parse: %w", err)
	}
	root := convertHTMLNode(doc)
	if root == nil {
		return nil, fmt.Errorf("lenient html parse: document has no element content")
	}
	return root, nil
}

func convertHTMLNode(n *html.Node) *Node {
	switch n.Type {
	case html.DocumentNode:
		// Unwrap to the single root element html.Parse guarantees.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := convertHTMLNode(c); converted != nil {
				return converted
			}
		}
		return nil
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return NewText(n.Data)
	case html.ElementNode:
		attrs := make(map[string]string, len(n.Attr))
		for _, attr := range n.Attr {
			attrs[attr.Key] = attr.Val
		}
		var children []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := convertHTMLNode(c); converted != nil {
				children = append(children, converted)
			}
		}
		return NewElement(strings.ToLower(n.Data), attrs, children)
	default:
		// Comments, doctypes.
		return nil
	}
}
