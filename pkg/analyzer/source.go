package analyzer

import (
	"math/rand"
	"sync"
	"time"
)

// Clock supplies the current time to the analyzer.
type Clock interface {
	Now() time.Time
}

// RandomSource supplies pseudo-random integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// lockedRand is safe to share between sessions created concurrently.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed.
func NewRandomSource(seed int64) RandomSource {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
