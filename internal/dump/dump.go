// Package dump renders document and styled trees as indented text for the
// CLI and for debugging.
package dump

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/xkilldash9x/styletree/internal/dom"
	"github.com/xkilldash9x/styletree/internal/style"
)

// Document renders a document tree.
func Document(root *dom.Node) string {
	tree := treeprint.NewWithRoot(nodeLabel(root))
	addChildren(tree, root.Children)
	return tree.String()
}

func addChildren(branch treeprint.Tree, children []*dom.Node) {
	for _, child := range children {
		sub := branch.AddBranch(nodeLabel(child))
		addChildren(sub, child.Children)
	}
}

// Styled renders a styled tree, each element annotated with its resolved
// properties.
func Styled(root *style.StyledNode) string {
	tree := treeprint.NewWithRoot(styledLabel(root))
	addStyledChildren(tree, root.Children)
	return tree.String()
}

func addStyledChildren(branch treeprint.Tree, children []*style.StyledNode) {
	for _, child := range children {
		sub := branch.AddBranch(styledLabel(child))
		addStyledChildren(sub, child.Children)
	}
}

func nodeLabel(n *dom.Node) string {
	if n.Type == dom.TextNode {
		return fmt.Sprintf("%q", n.Text)
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data.TagName)
	for _, key := range sortedKeys(n.Data.Attributes) {
		fmt.Fprintf(&b, " %s=%q", key, n.Data.Attributes[key])
	}
	b.WriteByte('>')
	return b.String()
}

func styledLabel(sn *style.StyledNode) string {
	label := nodeLabel(sn.Node)
	if len(sn.Properties) == 0 {
		return label
	}
	var parts []string
	for _, prop := range sortedProperties(sn.Properties) {
		parts = append(parts, prop+": "+sn.Properties[prop].String())
	}
	return label + " {" + strings.Join(parts, "; ") + "}"
}

func sortedKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedProperties(properties style.PropertyMap) []string {
	props := make([]string, 0, len(properties))
	for prop := range properties {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}
