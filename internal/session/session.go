// Package session ties the settings store, the dice and the round together
// for one running application.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/animation"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/engine"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/parser"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"go.uber.org/zap"
)

// ErrNoSuchDie is returned when a command names a die that is not on the table.
var ErrNoSuchDie = errors.New("no such die")

// Session manages the dice on the table and the round they report into.
// It is driven from a single goroutine, like the UI loop that owns it.
type Session struct {
	store    *settings.Store
	src      engine.Source
	feedback haptics.Feedback
	logger   *zap.Logger

	current    settings.Settings
	dice       []*engine.Die
	round      *engine.Round
	generation int
}

// New builds a session from the store's current settings.
func New(store *settings.Store, src engine.Source, feedback haptics.Feedback, logger *zap.Logger) *Session {
	if src == nil {
		src = engine.NewSource()
	}
	if feedback == nil {
		feedback = haptics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		store:    store,
		src:      src,
		feedback: feedback,
		logger:   logger,
		current:  store.Current(),
	}
	s.round = engine.NewRound(s.current.DiceCount)
	s.round.Subscribe(s.logSnapshot)
	s.rebuildDice()
	return s
}

// Refresh re-reads the settings. A different count or size puts new dice
// on the table and empties the round; a speed change only affects the next roll.
func (s *Session) Refresh() {
	next := s.store.Current()
	prev := s.current
	s.current = next

	if next.DiceCount == prev.DiceCount && next.DiceSize == prev.DiceSize {
		return
	}
	if err := s.round.Apply(&engine.DiceCountChangedEvent{Count: next.DiceCount}); err != nil {
		s.logger.Error("failed to resize round", zap.Error(err))
	}
	s.rebuildDice()
}

func (s *Session) rebuildDice() {
	s.generation++
	s.dice = make([]*engine.Die, max(s.current.DiceCount, 0))
	for i := range s.dice {
		idx := i
		d := engine.NewDie(idx, s.current.DiceSize, s.src, s.feedback)
		d.OnRoll(func(outcome int) {
			if err := s.round.Apply(&engine.DieRolledEvent{Index: idx, Outcome: outcome}); err != nil {
				s.logger.Error("failed to record roll", zap.Int("die", idx), zap.Error(err))
			}
		})
		s.dice[i] = d
	}
}

func (s *Session) logSnapshot(snap engine.Snapshot) {
	if snap.State == engine.RoundComplete {
		s.logger.Info("round complete",
			zap.String("round", snap.ID),
			zap.Ints("outcomes", snap.Outcomes),
			zap.Int("total", snap.Total))
	}
}

// Settings returns the preferences the table was last built from.
func (s *Session) Settings() settings.Settings { return s.current }

// Store exposes the backing settings store.
func (s *Session) Store() *settings.Store { return s.store }

// Dice returns the dice on the table, in index order.
func (s *Session) Dice() []*engine.Die { return s.dice }

// Round returns the active round.
func (s *Session) Round() *engine.Round { return s.round }

// Generation changes every time the dice are rebuilt, so callers can drop
// completion events addressed to dice that no longer exist.
func (s *Session) Generation() int { return s.generation }

// Activate starts rolling die index. It returns the animation to play and
// false if the die was already rolling.
func (s *Session) Activate(index int) (animation.Timeline, bool, error) {
	d, err := s.die(index)
	if err != nil {
		return animation.Timeline{}, false, err
	}
	if !d.Activate() {
		return animation.Timeline{}, false, nil
	}
	return animation.Spin(s.current.AnimationSpeed), true, nil
}

// Complete delivers the animation end event to die index.
func (s *Session) Complete(index int) (int, bool, error) {
	d, err := s.die(index)
	if err != nil {
		return 0, false, err
	}
	out, ok := d.Complete()
	return out, ok, nil
}

func (s *Session) die(index int) (*engine.Die, error) {
	if index < 0 || index >= len(s.dice) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchDie, index+1, len(s.dice))
	}
	return s.dice[index], nil
}

// RollAll starts a new round. It empties the results and nothing more:
// every die still has to be activated on its own.
func (s *Session) RollAll() {
	s.feedback.Impact(haptics.ImpactHeavy)
	if err := s.round.Apply(&engine.RoundResetEvent{Reason: engine.ResetRollAll}); err != nil {
		s.logger.Error("failed to start round", zap.Error(err))
	}
}

// Clear empties the results.
func (s *Session) Clear() {
	if err := s.round.Apply(&engine.RoundResetEvent{Reason: engine.ResetClear}); err != nil {
		s.logger.Error("failed to clear round", zap.Error(err))
	}
}

// History returns the breakdown of the current round.
func (s *Session) History() engine.HistoryReport {
	return s.round.History()
}

// ActionKind tells the UI what a command asked for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionRollDie
	ActionRollAll
	ActionClear
	ActionHistory
	ActionSetCount
	ActionSetSize
	ActionSetSpeed
	ActionReset
	ActionSettings
	ActionQuit
)

// Action is the outcome of executing a command line. Die-local effects have
// already happened; settings changes are left to ApplySetting so the UI can
// run the write off its event loop.
type Action struct {
	Kind     ActionKind
	Die      int // 0-based, for ActionRollDie
	Started  bool
	Timeline animation.Timeline
	Count    int
	Size     int
	Speed    float64
	Message  string
}

// Execute parses input and runs it against the table.
func (s *Session) Execute(input string) (Action, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		return Action{}, err
	}

	switch {
	case cmd.Roll != nil && cmd.Roll.All:
		s.RollAll()
		return Action{Kind: ActionRollAll, Message: "New round: roll each die"}, nil

	case cmd.Roll != nil:
		idx := *cmd.Roll.Die - 1
		tl, started, err := s.Activate(idx)
		if err != nil {
			return Action{}, err
		}
		act := Action{Kind: ActionRollDie, Die: idx, Started: started, Timeline: tl}
		if !started {
			act.Message = fmt.Sprintf("Die %d is still rolling", idx+1)
		}
		return act, nil

	case cmd.Clear != nil:
		s.Clear()
		return Action{Kind: ActionClear, Message: "Results cleared"}, nil

	case cmd.History != nil:
		return Action{Kind: ActionHistory, Message: s.History().String()}, nil

	case cmd.Count != nil:
		if err := settings.ValidateDiceCount(cmd.Count.Value); err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionSetCount, Count: cmd.Count.Value}, nil

	case cmd.Size != nil:
		size := cmd.Size.Sides()
		if err := settings.ValidateDiceSize(size); err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionSetSize, Size: size}, nil

	case cmd.Speed != nil:
		if err := settings.ValidateAnimationSpeed(cmd.Speed.Value); err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionSetSpeed, Speed: cmd.Speed.Value}, nil

	case cmd.Reset != nil:
		return Action{Kind: ActionReset}, nil

	case cmd.Settings != nil:
		return Action{Kind: ActionSettings}, nil

	case cmd.Quit != nil:
		return Action{Kind: ActionQuit}, nil
	}

	return Action{Kind: ActionNone}, nil
}

// ApplySetting performs the store write an Execute action asked for. It
// only touches the store, so it may run off the UI loop; call Refresh
// afterwards to pick the change up.
func (s *Session) ApplySetting(ctx context.Context, act Action) error {
	var err error
	switch act.Kind {
	case ActionSetCount:
		err = s.store.UpdateDiceCount(ctx, act.Count)
	case ActionSetSize:
		err = s.store.UpdateDiceSize(ctx, act.Size)
	case ActionSetSpeed:
		err = s.store.UpdateAnimationSpeed(ctx, act.Speed)
	case ActionReset:
		err = s.store.ResetToDefaults(ctx)
		if err == nil {
			s.feedback.Notify(haptics.NotifySuccess)
		}
	default:
		return nil
	}
	return err
}
