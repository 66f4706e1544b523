package parser

import (
	"strconv"
	"strings"
)

// Command is one line typed at the ":" prompt.
type Command struct {
	Roll     *RollCmd     `parser:"( @@"`
	Clear    *ClearCmd    `parser:"| @@"`
	History  *HistoryCmd  `parser:"| @@"`
	Count    *CountCmd    `parser:"| @@"`
	Size     *SizeCmd     `parser:"| @@"`
	Speed    *SpeedCmd    `parser:"| @@"`
	Reset    *ResetCmd    `parser:"| @@"`
	Settings *SettingsCmd `parser:"| @@"`
	Quit     *QuitCmd     `parser:"| @@ )"`
}

// RollCmd activates one die ("roll 2") or starts a new round ("roll all").
type RollCmd struct {
	Keyword string `parser:"@\"roll\""`
	All     bool   `parser:"( @\"all\""`
	Die     *int   `parser:"| @Int )"`
}

// ClearCmd empties the current round.
type ClearCmd struct {
	Keyword string `parser:"@\"clear\""`
}

// HistoryCmd shows the per-die breakdown.
type HistoryCmd struct {
	Keyword string `parser:"@\"history\""`
}

// CountCmd sets how many dice are rolled.
type CountCmd struct {
	Keyword string `parser:"@\"count\""`
	Value   int    `parser:"@Int"`
}

// SizeCmd sets the die size, as "size 20" or "size d20".
type SizeCmd struct {
	Keyword string `parser:"@\"size\""`
	Raw     string `parser:"@(DieSize|Int)"`
}

// Sides returns the number of faces named by the command.
func (s *SizeCmd) Sides() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(s.Raw, "d"))
	return n
}

// SpeedCmd sets the animation speed multiplier.
type SpeedCmd struct {
	Keyword string  `parser:"@\"speed\""`
	Value   float64 `parser:"@(Float|Int)"`
}

// ResetCmd restores default settings.
type ResetCmd struct {
	Keyword string `parser:"@\"reset\""`
}

// SettingsCmd opens the settings screen.
type SettingsCmd struct {
	Keyword string `parser:"@\"settings\""`
}

// QuitCmd leaves the application.
type QuitCmd struct {
	Keyword string `parser:"@(\"quit\"|\"exit\")"`
}

// Parse lower-cases and parses a single command line.
func Parse(input string) (*Command, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	cmd, err := Build().ParseString("", normalized)
	if err != nil {
		return nil, MapError(input, err)
	}
	return cmd, nil
}
