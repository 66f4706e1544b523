// Package settings holds the user's dice preferences and persists them as a
// single JSON blob in a key-value store.
package settings

import (
	"fmt"
	"slices"
)

// Key is the storage key the preferences blob lives under.
const Key = "diceSettings"

// Settings are the user-tunable roll preferences.
type Settings struct {
	DiceCount      int     `json:"diceCount" yaml:"diceCount"`
	DiceSize       int     `json:"diceSize" yaml:"diceSize"`
	AnimationSpeed float64 `json:"animationSpeed" yaml:"animationSpeed"`
}

// Default values restored by ResetToDefaults.
const (
	DefaultDiceCount      = 2
	DefaultDiceSize       = 6
	DefaultAnimationSpeed = 1.0
)

// Defaults returns the first-launch preferences.
func Defaults() Settings {
	return Settings{
		DiceCount:      DefaultDiceCount,
		DiceSize:       DefaultDiceSize,
		AnimationSpeed: DefaultAnimationSpeed,
	}
}

// Discrete option sets offered by the settings screen.
var (
	CountOptions = []int{1, 2, 3, 4, 5, 6, 8, 10}
	SizeOptions  = []int{4, 6, 8, 10, 12, 20, 100}
	SpeedOptions = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}
)

const (
	MinDiceCount = 1
	MaxDiceCount = 10
)

// ValidateDiceCount accepts any count in [MinDiceCount, MaxDiceCount].
func ValidateDiceCount(n int) error {
	if n < MinDiceCount || n > MaxDiceCount {
		return fmt.Errorf("dice count must be between %d and %d, got %d", MinDiceCount, MaxDiceCount, n)
	}
	return nil
}

// ValidateDiceSize accepts only the standard polyhedral sizes.
func ValidateDiceSize(n int) error {
	if !slices.Contains(SizeOptions, n) {
		return fmt.Errorf("dice size must be one of %v, got %d", SizeOptions, n)
	}
	return nil
}

// ValidateAnimationSpeed accepts any positive multiplier.
func ValidateAnimationSpeed(x float64) error {
	if x <= 0 {
		return fmt.Errorf("animation speed must be positive, got %g", x)
	}
	return nil
}

// Validate checks every field.
func (s Settings) Validate() error {
	if err := ValidateDiceCount(s.DiceCount); err != nil {
		return err
	}
	if err := ValidateDiceSize(s.DiceSize); err != nil {
		return err
	}
	return ValidateAnimationSpeed(s.AnimationSpeed)
}

// Summary renders the dice pool in RPG notation, e.g. "2 dice d6".
func (s Settings) Summary() string {
	noun := "dice"
	if s.DiceCount == 1 {
		noun = "die"
	}
	return fmt.Sprintf("%d %s d%d", s.DiceCount, noun, s.DiceSize)
}
