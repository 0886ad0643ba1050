// Package random abstracts the random-number source used for reservation
// codes so workflows can be driven by a seeded source in tests.
package random

import (
	"math/rand"
	"sync"
	"time"
)

type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSource() Source {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewSeededSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
type SequenceSource struct {
	values []int
	pos    int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}
