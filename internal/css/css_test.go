package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorSpecificity(t *testing.T) {
	tests := []struct {
		name     string
		selector Selector
		want     Specificity
	}{
		{"bare tag", Selector{Tag: "div"}, Specificity{0, 0, 1}},
		{"id only", Selector{ID: "x"}, Specificity{1, 0, 0}},
		{"classes only", Selector{Classes: []string{"a", "b"}}, Specificity{0, 2, 0}},
		{"all components", Selector{Tag: "div", ID: "x", Classes: []string{"a"}}, Specificity{1, 1, 1}},
		{"empty selector", Selector{}, Specificity{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selector.Specificity())
		})
	}
}

func TestSpecificityLess(t *testing.T) {
	// The id field is most significant: one id outranks any number of
	// classes, and classes outrank a bare tag.
	id := Specificity{1, 0, 0}
	threeClasses := Specificity{0, 3, 0}
	oneClassAndTag := Specificity{0, 1, 1}
	tag := Specificity{0, 0, 1}

	assert.True(t, threeClasses.Less(id))
	assert.False(t, id.Less(threeClasses))
	assert.True(t, tag.Less(oneClassAndTag))
	assert.True(t, oneClassAndTag.Less(threeClasses))
	assert.False(t, tag.Less(tag))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "block", Keyword("block").String())
	assert.Equal(t, "10px", Size{Amount: 10, Unit: UnitPx}.String())
	assert.Equal(t, "43%", Size{Amount: 43, Unit: UnitPercent}.String())
	assert.Equal(t, "1.5em", Size{Amount: 1.5, Unit: UnitEm}.String())
	assert.Equal(t, "7", Size{Amount: 7, Unit: UnitNone}.String())
	assert.Equal(t, "#123456", Color{0x12, 0x34, 0x56}.String())
}
