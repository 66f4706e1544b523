package engine

import (
	"testing"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDieStartsOnFaceOne(t *testing.T) {
	d := NewDie(0, 6, NewSource(), nil)
	assert.Equal(t, 1, d.Outcome())
	assert.False(t, d.Animating())
	assert.Equal(t, "#4ECDC4", d.Color())
}

func TestDieActivateIsReentrancyGuarded(t *testing.T) {
	rec := &haptics.Recorder{}
	d := NewDie(0, 20, NewQueueSource(17), rec)

	var reported []int
	d.OnRoll(func(o int) { reported = append(reported, o) })

	require.True(t, d.Activate())
	assert.True(t, d.Animating())

	// Taps during the roll do nothing.
	assert.False(t, d.Activate())
	assert.False(t, d.Activate())

	out, ok := d.Complete()
	require.True(t, ok)
	assert.Equal(t, 17, out)
	assert.Equal(t, []int{17}, reported)
	assert.False(t, d.Animating())

	impacts, _ := rec.Snapshot()
	assert.Equal(t, []haptics.ImpactStyle{haptics.ImpactMedium}, impacts)

	// Once the roll lands the die can be rolled again.
	assert.True(t, d.Activate())
}

func TestDieCompleteWithoutActivateIsIgnored(t *testing.T) {
	d := NewDie(0, 6, NewQueueSource(5), nil)
	called := false
	d.OnRoll(func(int) { called = true })

	_, ok := d.Complete()
	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, 1, d.Outcome())
}

func TestDieColorCyclesPalette(t *testing.T) {
	src := NewQueueSource(6, 12)
	d := NewDie(0, 12, src, nil)

	d.Activate()
	d.Complete()
	assert.Equal(t, Palette[0], d.Color())

	d.Activate()
	d.Complete()
	assert.Equal(t, Palette[0], d.Color())
}
