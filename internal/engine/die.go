package engine

import (
	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"
)

// Palette is the face colour cycle, indexed by outcome modulo its length.
var Palette = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD"}

// Die is one interactive die. It owns its animating flag and last outcome;
// nothing else mutates them.
type Die struct {
	index     int
	sides     int
	src       Source
	feedback  haptics.Feedback
	animating bool
	outcome   int
	onRoll    func(outcome int)
}

// NewDie creates a die showing face 1.
func NewDie(index, sides int, src Source, feedback haptics.Feedback) *Die {
	if feedback == nil {
		feedback = haptics.Nop{}
	}
	return &Die{
		index:    index,
		sides:    sides,
		src:      src,
		feedback: feedback,
		outcome:  1,
	}
}

// OnRoll registers the roll-completion callback.
func (d *Die) OnRoll(fn func(outcome int)) {
	d.onRoll = fn
}

// Activate starts a roll. It returns false, doing nothing, while a roll is
// already in flight.
func (d *Die) Activate() bool {
	if d.animating {
		return false
	}
	d.animating = true
	d.feedback.Impact(haptics.ImpactMedium)
	return true
}

// Complete is the animation end event: it draws the outcome, leaves the
// animating state and reports to the callback. It is ignored when no roll
// is in flight.
func (d *Die) Complete() (int, bool) {
	if !d.animating {
		return 0, false
	}
	d.outcome = Draw(d.src, d.sides)
	d.animating = false
	if d.onRoll != nil {
		d.onRoll(d.outcome)
	}
	return d.outcome, true
}

func (d *Die) Index() int      { return d.index }
func (d *Die) Sides() int      { return d.sides }
func (d *Die) Animating() bool { return d.animating }
func (d *Die) Outcome() int    { return d.outcome }

// Color is the cosmetic face colour for the current outcome.
func (d *Die) Color() string {
	return Palette[d.outcome%len(Palette)]
}
