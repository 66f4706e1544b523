package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawStaysInRange(t *testing.T) {
	src := NewSeededSource(1, 2)
	for _, sides := range []int{1, 4, 6, 8, 10, 12, 20, 100} {
		for i := 0; i < 2000; i++ {
			v := Draw(src, sides)
			if v < 1 || v > sides {
				t.Fatalf("d%d rolled %d", sides, v)
			}
		}
	}
}

func TestDrawIsRoughlyUniform(t *testing.T) {
	src := NewSeededSource(42, 7)
	const sides = 6
	const draws = 60000

	counts := make([]int, sides+1)
	for i := 0; i < draws; i++ {
		counts[Draw(src, sides)]++
	}

	// Chi-square with 5 degrees of freedom; 20.52 is the p=0.001 critical value.
	expected := float64(draws) / sides
	chi := 0.0
	for face := 1; face <= sides; face++ {
		d := float64(counts[face]) - expected
		chi += d * d / expected
	}
	assert.Less(t, chi, 20.52, "counts %v", counts[1:])
}

func TestDrawZeroSides(t *testing.T) {
	assert.Equal(t, 0, Draw(NewSource(), 0))
}

func TestQueueSource(t *testing.T) {
	q := NewQueueSource(4, 2)
	q.Push(6)
	q.Fallback = NewSeededSource(3, 3)

	assert.Equal(t, 4, Draw(q, 6))
	assert.Equal(t, 2, Draw(q, 6))
	assert.Equal(t, 6, Draw(q, 6))

	v := Draw(q, 6)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 6)
}

func TestQueueSourceFallbackConcurrent(t *testing.T) {
	q := NewQueueSource()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := q.Intn(20)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 20)
			}
		}()
	}
	wg.Wait()

	assert.NotNil(t, q.Fallback)
}
