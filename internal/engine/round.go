package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RoundState is where a round sits in EMPTY → PARTIAL → COMPLETE.
type RoundState int

const (
	RoundEmpty RoundState = iota
	RoundPartial
	RoundComplete
)

func (s RoundState) String() string {
	switch s {
	case RoundEmpty:
		return "empty"
	case RoundPartial:
		return "partial"
	case RoundComplete:
		return "complete"
	}
	return fmt.Sprintf("RoundState(%d)", int(s))
}

// NoRollsMessage is shown when history is requested for an empty round.
const NoRollsMessage = "No rolls yet"

// Snapshot is an immutable view of a round emitted after every event.
type Snapshot struct {
	ID        string
	State     RoundState
	Outcomes  []int // 0 marks a die that has not reported
	Total     int   // meaningful only when ShowTotal
	ShowTotal bool
}

// Round collects per-die outcomes by index and totals them once every die
// has reported. Outcomes are never persisted.
type Round struct {
	id        string
	outcomes  []int
	total     int
	observers []func(Snapshot)
}

// NewRound returns an empty round for diceCount dice.
func NewRound(diceCount int) *Round {
	if diceCount < 0 {
		diceCount = 0
	}
	return &Round{
		id:       uuid.NewString(),
		outcomes: make([]int, diceCount),
	}
}

// Subscribe registers fn to receive a snapshot after every applied event.
func (r *Round) Subscribe(fn func(Snapshot)) {
	r.observers = append(r.observers, fn)
}

// Apply runs evt, recomputes the total and notifies observers.
func (r *Round) Apply(evt Event) error {
	if err := evt.Apply(r); err != nil {
		return err
	}
	r.recompute()

	snap := r.Snapshot()
	for _, fn := range r.observers {
		fn(snap)
	}
	return nil
}

func (r *Round) reset() {
	r.id = uuid.NewString()
	for i := range r.outcomes {
		r.outcomes[i] = 0
	}
	r.total = 0
}

// recompute sums the outcomes once every die has reported.
func (r *Round) recompute() {
	r.total = 0
	if r.State() != RoundComplete {
		return
	}
	for _, v := range r.outcomes {
		r.total += v
	}
}

func (r *Round) reported() int {
	n := 0
	for _, v := range r.outcomes {
		if v > 0 {
			n++
		}
	}
	return n
}

// ID identifies the round; it changes on every reset.
func (r *Round) ID() string { return r.id }

// DiceCount is the number of dice the round waits for.
func (r *Round) DiceCount() int { return len(r.outcomes) }

// State derives the round state from the stored outcomes.
func (r *Round) State() RoundState {
	n := r.reported()
	switch {
	case n == 0:
		return RoundEmpty
	case n == len(r.outcomes):
		return RoundComplete
	default:
		return RoundPartial
	}
}

// Total returns the sum and whether it may be displayed.
func (r *Round) Total() (int, bool) {
	if r.State() != RoundComplete {
		return 0, false
	}
	return r.total, true
}

// Outcome returns the outcome at index and whether that die has reported.
func (r *Round) Outcome(index int) (int, bool) {
	if index < 0 || index >= len(r.outcomes) {
		return 0, false
	}
	v := r.outcomes[index]
	return v, v > 0
}

// Snapshot copies the current state.
func (r *Round) Snapshot() Snapshot {
	total, show := r.Total()
	return Snapshot{
		ID:        r.id,
		State:     r.State(),
		Outcomes:  append([]int(nil), r.outcomes...),
		Total:     total,
		ShowTotal: show,
	}
}

// HistoryLine is one die's entry in a history report.
type HistoryLine struct {
	Die     int // 1-based
	Outcome int // 0 when the die has not reported
}

// HistoryReport is the per-die breakdown offered by "show history".
//
// Total is the round total, 0 until every die has reported; Sum adds
// whatever outcomes are populated. The two
// disagree for a partial round, and Complete tells the reader which applies.
type HistoryReport struct {
	Empty    bool
	Lines    []HistoryLine
	Total    int
	Sum      int
	Complete bool
}

// History builds the breakdown for the current round.
func (r *Round) History() HistoryReport {
	if r.State() == RoundEmpty {
		return HistoryReport{Empty: true}
	}

	rep := HistoryReport{
		Total:    r.total,
		Complete: r.State() == RoundComplete,
	}
	for i, v := range r.outcomes {
		rep.Lines = append(rep.Lines, HistoryLine{Die: i + 1, Outcome: v})
		rep.Sum += v
	}
	return rep
}

// String renders the report as dialog text.
func (h HistoryReport) String() string {
	if h.Empty {
		return NoRollsMessage
	}
	var sb strings.Builder
	for _, l := range h.Lines {
		if l.Outcome > 0 {
			fmt.Fprintf(&sb, "Die %d: %d\n", l.Die, l.Outcome)
		} else {
			fmt.Fprintf(&sb, "Die %d: -\n", l.Die)
		}
	}
	fmt.Fprintf(&sb, "\nTotal: %d", h.Total)
	if !h.Complete {
		fmt.Fprintf(&sb, " (round incomplete, rolled so far: %d)", h.Sum)
	}
	return sb.String()
}
