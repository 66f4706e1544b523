// Package animation models the die roll animation as a fixed timeline.
//
// A spin is two rotation loops (about X and Y) running in parallel and
// repeated a fixed number of iterations, composed in parallel with a one-shot
// scale pulse. Every duration is divided by the speed multiplier, so a
// higher speed gives a shorter roll. The timeline only answers "what does
// frame t look like" and "when does it end"; completion is delivered by the
// caller as a single scheduled event.
package animation

import (
	"math"
	"time"
)

const (
	// Iterations is how many times the rotation loop repeats.
	Iterations = 8
	// PulseScale is the peak scale reached by the pulse.
	PulseScale = 1.1

	rotateXBase = 200 * time.Millisecond
	rotateYBase = 300 * time.Millisecond
	pulseBase   = 100 * time.Millisecond
)

// Timeline holds the scaled phase durations of one spin.
type Timeline struct {
	Speed      float64
	RotateX    time.Duration
	RotateY    time.Duration
	PulseUp    time.Duration
	PulseDown  time.Duration
	Iterations int
}

// Frame is the visual state of a die at a point in the timeline.
type Frame struct {
	RotateX float64 // degrees, [0, 360]
	RotateY float64 // degrees, [0, 360]
	Scale   float64
	Done    bool
}

// Spin builds the timeline for speed. Non-positive speeds fall back to 1.
func Spin(speed float64) Timeline {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 1
	}
	return Timeline{
		Speed:      speed,
		RotateX:    scale(rotateXBase, speed),
		RotateY:    scale(rotateYBase, speed),
		PulseUp:    scale(pulseBase, speed),
		PulseDown:  scale(pulseBase, speed),
		Iterations: Iterations,
	}
}

func scale(base time.Duration, speed float64) time.Duration {
	return time.Duration(float64(base) / speed)
}

// Iteration is the length of one loop pass; the pass waits for the slower rotation.
func (t Timeline) Iteration() time.Duration {
	return max(t.RotateX, t.RotateY)
}

// Duration is when the whole spin ends.
func (t Timeline) Duration() time.Duration {
	return max(time.Duration(t.Iterations)*t.Iteration(), t.PulseUp+t.PulseDown)
}

// Sample returns the frame at elapsed time since the spin started.
func (t Timeline) Sample(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= t.Duration() {
		return Frame{Scale: 1, Done: true}
	}

	f := Frame{Scale: t.pulseAt(elapsed)}
	if iter := t.Iteration(); iter > 0 {
		within := elapsed % iter
		f.RotateX = 360 * progress(within, t.RotateX)
		f.RotateY = 360 * progress(within, t.RotateY)
	}
	return f
}

func (t Timeline) pulseAt(elapsed time.Duration) float64 {
	switch {
	case elapsed < t.PulseUp:
		return 1 + (PulseScale-1)*progress(elapsed, t.PulseUp)
	case elapsed < t.PulseUp+t.PulseDown:
		return PulseScale - (PulseScale-1)*progress(elapsed-t.PulseUp, t.PulseDown)
	default:
		return 1
	}
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

// Glyph maps a frame's rotation to a spinner character for text rendering.
func (f Frame) Glyph() string {
	if f.Done {
		return " "
	}
	glyphs := []string{"◐", "◓", "◑", "◒"}
	return glyphs[int(f.RotateY/90)%len(glyphs)]
}
