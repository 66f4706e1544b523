package engine

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness behind every draw. Intn returns a value in [0, n).
// No fairness beyond the platform PRNG is promised.
type Source interface {
	Intn(n int) int
}

type pcgSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *pcgSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSource returns a PCG source seeded from runtime entropy.
func NewSource() Source {
	return NewSeededSource(rand.Uint64(), rand.Uint64())
}

// NewSeededSource returns a reproducible PCG source.
func NewSeededSource(seed1, seed2 uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// QueueSource replays predetermined outcomes, then defers to Fallback.
// Outcomes are die faces (1-based), not Intn results.
type QueueSource struct {
	mu       sync.Mutex
	queue    []int
	Fallback Source
}

// NewQueueSource prepares a source that yields outcomes in order.
func NewQueueSource(outcomes ...int) *QueueSource {
	return &QueueSource{queue: outcomes}
}

// Push appends more outcomes to the queue.
func (q *QueueSource) Push(outcomes ...int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue = append(q.queue, outcomes...)
}

func (q *QueueSource) Intn(n int) int {
	q.mu.Lock()
	if len(q.queue) > 0 {
		val := q.queue[0]
		q.queue = q.queue[1:]
		q.mu.Unlock()
		return val - 1
	}
	fb := q.Fallback
	if fb == nil {
		fb = NewSource()
		q.Fallback = fb
	}
	q.mu.Unlock()

	return fb.Intn(n)
}

// Draw rolls one die with the given number of sides: floor(random*sides)+1.
// A die with no sides yields 0.
func Draw(src Source, sides int) int {
	if sides <= 0 {
		return 0
	}
	return src.Intn(sides) + 1
}
