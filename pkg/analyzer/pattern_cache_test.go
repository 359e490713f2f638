package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternCache_Observe(t *testing.T) {
	c := NewPatternCache(0)
	assert.True(t, c.Observe("a"))
	assert.False(t, c.Observe("a"))
	assert.True(t, c.Observe("b"))
	assert.Equal(t, 2, c.Len())
}

func TestPatternCache_ForgetsOldestWhenFull(t *testing.T) {
	c := NewPatternCache(2)
	c.Observe("a")
	c.Observe("b")
	c.Observe("c")

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Observe("c"))
	assert.True(t, c.Observe("a"), "a was evicted and is novel again")
}
