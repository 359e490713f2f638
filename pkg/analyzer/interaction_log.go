package analyzer

import (
	"strings"
	"time"
)

// DefaultLogCapacity is the number of recent interactions kept for pattern detection.
const DefaultLogCapacity = 10

// sequenceSeparator joins category names into a sequence signature. It is a
// control character so that names containing dashes or spaces cannot collide.
const sequenceSeparator = "\x1f"

// Interaction is one hover-start on a category.
type Interaction struct {
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// InteractionLog is a fixed-capacity ring of the most recent interactions.
// Appending to a full log evicts the oldest entry.
type InteractionLog struct {
	buf   []Interaction
	start int
	size  int
}

func NewInteractionLog(capacity int) *InteractionLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &InteractionLog{buf: make([]Interaction, capacity)}
}

func (l *InteractionLog) Append(ev Interaction) {
	if l.size < len(l.buf) {
		l.buf[(l.start+l.size)%len(l.buf)] = ev
		l.size++
		return
	}
	l.buf[l.start] = ev
	l.start = (l.start + 1) % len(l.buf)
}

func (l *InteractionLog) Len() int { return l.size }

func (l *InteractionLog) Cap() int { return len(l.buf) }

// Entries returns the interactions oldest first.
func (l *InteractionLog) Entries() []Interaction {
	out := make([]Interaction, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

// Signature joins the logged category names, oldest first.
func (l *InteractionLog) Signature() string {
	names := make([]string, l.size)
	for i := 0; i < l.size; i++ {
		names[i] = l.buf[(l.start+i)%len(l.buf)].Category
	}
	return strings.Join(names, sequenceSeparator)
}

// HasConsecutive reports whether category appears in two adjacent entries.
func (l *InteractionLog) HasConsecutive(category string) bool {
	for i := 1; i < l.size; i++ {
		prev := l.buf[(l.start+i-1)%len(l.buf)].Category
		cur := l.buf[(l.start+i)%len(l.buf)].Category
		if prev == category && cur == category {
			return true
		}
	}
	return false
}
