package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when an event names a die outside the round.
var ErrInvalidIndex = errors.New("die index out of range")

type EventType string

const (
	EventDieRolled        EventType = "DieRolled"
	EventRoundReset       EventType = "RoundReset"
	EventDiceCountChanged EventType = "DiceCountChanged"
)

// ResetReason says why a round went back to empty.
type ResetReason string

const (
	ResetRollAll ResetReason = "roll_all"
	ResetClear   ResetReason = "clear"
)

// Event is a single state transition of a Round.
type Event interface {
	Type() EventType
	Apply(r *Round) error
	Message() string
}

// DieRolledEvent stores a die's outcome at its fixed index, replacing any
// earlier outcome there.
type DieRolledEvent struct {
	Index   int `json:"index"`
	Outcome int `json:"outcome"`
}

func (e *DieRolledEvent) Type() EventType { return EventDieRolled }
func (e *DieRolledEvent) Apply(r *Round) error {
	if e.Index < 0 || e.Index >= len(r.outcomes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, e.Index, len(r.outcomes))
	}
	if e.Outcome <= 0 {
		return fmt.Errorf("outcome must be positive, got %d", e.Outcome)
	}
	r.outcomes[e.Index] = e.Outcome
	return nil
}
func (e *DieRolledEvent) Message() string {
	return fmt.Sprintf("Die %d rolled %d", e.Index+1, e.Outcome)
}

// RoundResetEvent empties every outcome. Resetting never rolls a die.
type RoundResetEvent struct {
	Reason ResetReason `json:"reason"`
}

func (e *RoundResetEvent) Type() EventType { return EventRoundReset }
func (e *RoundResetEvent) Apply(r *Round) error {
	r.reset()
	return nil
}
func (e *RoundResetEvent) Message() string {
	if e.Reason == ResetRollAll {
		return "New round"
	}
	return "Results cleared"
}

// DiceCountChangedEvent resizes the round and empties it.
type DiceCountChangedEvent struct {
	Count int `json:"count"`
}

func (e *DiceCountChangedEvent) Type() EventType { return EventDiceCountChanged }
func (e *DiceCountChangedEvent) Apply(r *Round) error {
	if e.Count < 0 {
		return fmt.Errorf("dice count must not be negative, got %d", e.Count)
	}
	r.outcomes = make([]int, e.Count)
	r.reset()
	return nil
}
func (e *DiceCountChangedEvent) Message() string {
	return fmt.Sprintf("Rolling %d dice", e.Count)
}
