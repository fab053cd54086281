package styletree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/styletree/internal/markup"
)

func TestEndToEnd(t *testing.T) {
	root, err := ParseMarkup(`<div id="x" class="a b"><p>hi</p></div>`)
	require.NoError(t, err)

	sheet, err := ParseStylesheet(`#x{display:block;} .a{color:red;} p{color:blue;}`)
	require.NoError(t, err)

	styled := ResolveStyles(root, sheet)

	assert.Equal(t, Keyword("block"), styled.Properties["display"])
	assert.Equal(t, Keyword("red"), styled.Properties["color"])

	require.Len(t, styled.Children, 1)
	p := styled.Children[0]
	assert.Equal(t, Keyword("blue"), p.Properties["color"])
}

func TestParseMarkupRejectsWholeInput(t *testing.T) {
	_, err := ParseMarkup(`<div><p>ok</p>`)
	assert.ErrorIs(t, err, markup.ErrUnexpectedEOF)
}

func TestResolveStylesWithEmptySheet(t *testing.T) {
	root, err := ParseMarkup(`<div><span>x</span></div>`)
	require.NoError(t, err)

	styled := ResolveStyles(root, Stylesheet{})
	assert.Empty(t, styled.Properties)
	require.Len(t, styled.Children, 1)
}
