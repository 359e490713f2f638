package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestInteractionLog_EvictsOldestFirst(t *testing.T) {
	l := NewInteractionLog(DefaultLogCapacity)
	for i := 1; i <= 11; i++ {
		l.Append(Interaction{Category: fmt.Sprintf("c%d", i)})
	}

	entries := l.Entries()
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, "c2", entries[0].Category)
	assert.Equal(t, "c11", entries[9].Category)
}

func TestInteractionLog_HasConsecutive(t *testing.T) {
	l := NewInteractionLog(4)
	for _, c := range []string{"a", "b", "a"} {
		l.Append(Interaction{Category: c})
	}
	assert.False(t, l.HasConsecutive("a"))

	l.Append(Interaction{Category: "a"})
	assert.True(t, l.HasConsecutive("a"))
	assert.False(t, l.HasConsecutive("b"))

	// pushing the pair out of the window clears it
	l.Append(Interaction{Category: "b"})
	l.Append(Interaction{Category: "c"})
	l.Append(Interaction{Category: "d"})
	assert.False(t, l.HasConsecutive("a"))
}

func TestInteractionLog_SignatureDoesNotConfuseDashedNames(t *testing.T) {
	dashed := NewInteractionLog(4)
	dashed.Append(Interaction{Category: "a-a"})
	assert.False(t, dashed.HasConsecutive("a"))

	split := NewInteractionLog(4)
	split.Append(Interaction{Category: "a"})
	split.Append(Interaction{Category: "a"})
	assert.NotEqual(t, dashed.Signature(), split.Signature())
}

func TestInteractionLog_BoundedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c", "d"})).Draw(t, "names")
		l := NewInteractionLog(DefaultLogCapacity)
		for _, n := range names {
			l.Append(Interaction{Category: n})
		}

		want := names
		if len(want) > DefaultLogCapacity {
			want = want[len(want)-DefaultLogCapacity:]
		}
		if l.Len() != len(want) {
			t.Fatalf("len = %d, want %d", l.Len(), len(want))
		}
		for i, e := range l.Entries() {
			if e.Category != want[i] {
				t.Fatalf("entry %d = %q, want %q", i, e.Category, want[i])
			}
		}
	})
}
