package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_String_WithPath(t *testing.T) {
	sp := New("main.lm", 4, 9)
	assert.Equal(t, "main.lm:[4,9)", sp.String())
}

func TestSpan_String_WithoutPath(t *testing.T) {
	sp := New("", 4, 9)
	assert.Equal(t, "[4,9)", sp.String())
}

func TestSpan_IsZero(t *testing.T) {
	assert.True(t, Span{}.IsZero())
	assert.False(t, New("main.lm", 0, 0).IsZero())
	assert.False(t, New("", 1, 2).IsZero())
}

func TestSpan_Comparable(t *testing.T) {
	// Spans are value types; equal fields mean equal spans.
	a := New("main.lm", 4, 9)
	b := New("main.lm", 4, 9)
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}
