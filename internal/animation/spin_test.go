package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinDurationScalesInverselyWithSpeed(t *testing.T) {
	tests := []struct {
		speed float64
		want  time.Duration
	}{
		{1.0, 2400 * time.Millisecond},
		{2.0, 1200 * time.Millisecond},
		{0.5, 4800 * time.Millisecond},
		{0, 2400 * time.Millisecond},
		{-3, 2400 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Spin(tt.speed).Duration(), "speed %v", tt.speed)
	}

	assert.Less(t, Spin(1.5).Duration(), Spin(1.25).Duration())
}

func TestSpinPhases(t *testing.T) {
	tl := Spin(1)
	assert.Equal(t, 200*time.Millisecond, tl.RotateX)
	assert.Equal(t, 300*time.Millisecond, tl.RotateY)
	assert.Equal(t, 300*time.Millisecond, tl.Iteration())
	assert.Equal(t, 8, tl.Iterations)
}

func TestSampleRotation(t *testing.T) {
	tl := Spin(1)

	f := tl.Sample(150 * time.Millisecond)
	assert.InDelta(t, 270, f.RotateX, 0.001)
	assert.InDelta(t, 180, f.RotateY, 0.001)

	// X finished its pass and holds at a full turn until the iteration ends.
	f = tl.Sample(250 * time.Millisecond)
	assert.InDelta(t, 360, f.RotateX, 0.001)

	// Second iteration starts over.
	f = tl.Sample(330 * time.Millisecond)
	assert.InDelta(t, 54, f.RotateX, 0.001)
	assert.False(t, f.Done)
}

func TestSamplePulse(t *testing.T) {
	tl := Spin(1)

	assert.InDelta(t, 1.0, tl.Sample(0).Scale, 0.0001)
	assert.InDelta(t, 1.05, tl.Sample(50*time.Millisecond).Scale, 0.0001)
	assert.InDelta(t, 1.1, tl.Sample(100*time.Millisecond).Scale, 0.0001)
	assert.InDelta(t, 1.05, tl.Sample(150*time.Millisecond).Scale, 0.0001)
	assert.InDelta(t, 1.0, tl.Sample(time.Second).Scale, 0.0001)
}

func TestSampleDone(t *testing.T) {
	tl := Spin(2)
	assert.False(t, tl.Sample(tl.Duration()-time.Millisecond).Done)
	f := tl.Sample(tl.Duration())
	assert.True(t, f.Done)
	assert.Equal(t, 1.0, f.Scale)
	assert.Equal(t, " ", f.Glyph())
}
