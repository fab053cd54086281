package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeek(t *testing.T) {
	s := New("hello world")

	ch, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), ch)

	// Peek does not move the cursor.
	ch, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), ch)
	assert.Equal(t, 0, s.Pos())
}

func TestPeekAtEnd(t *testing.T) {
	s := New("")
	_, err := s.Peek()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestAdvance(t *testing.T) {
	s := New("ab")

	ch, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), ch)

	ch, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), ch)

	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestStartsWith(t *testing.T) {
	s := New("hello there world!")

	assert.True(t, s.StartsWith("hell"))
	assert.False(t, s.StartsWith("world"))

	s.ConsumeWhile(func(ch byte) bool { return ch != 'w' })
	assert.True(t, s.StartsWith("w"))
	assert.True(t, s.StartsWith("world"))
}

func TestAtEnd(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		consume int
		want    bool
	}{
		{"fresh non-empty input", "hello", 0, false},
		{"fully consumed", "hello", 5, true},
		{"empty input", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			for i := 0; i < tt.consume; i++ {
				_, err := s.Advance()
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, s.AtEnd())
		})
	}
}

func TestConsumeWhile(t *testing.T) {
	t.Run("stops at first failing byte", func(t *testing.T) {
		s := New("hello world!")
		got := s.ConsumeWhile(func(ch byte) bool { return ch != ' ' })
		assert.Equal(t, "hello", got)

		ch, err := s.Peek()
		require.NoError(t, err)
		assert.Equal(t, byte(' '), ch)
	})

	t.Run("may return empty", func(t *testing.T) {
		s := New("hello")
		got := s.ConsumeWhile(func(ch byte) bool { return ch == 'x' })
		assert.Equal(t, "", got)
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("consumes whole input when every byte passes", func(t *testing.T) {
		s := New("aaaa")
		got := s.ConsumeWhile(func(ch byte) bool { return ch == 'a' })
		assert.Equal(t, "aaaa", got)
		assert.True(t, s.AtEnd())
	})

	t.Run("never fails at end", func(t *testing.T) {
		s := New("")
		got := s.ConsumeWhile(func(byte) bool { return true })
		assert.Equal(t, "", got)
	})
}

func TestSkipWhitespace(t *testing.T) {
	s := New(" \t\n\r  x")
	s.SkipWhitespace()

	ch, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, byte('x'), ch)

	// Skipping with no whitespace present is a no-op.
	s.SkipWhitespace()
	assert.Equal(t, 6, s.Pos())
}
