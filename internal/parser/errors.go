package parser

import (
	"fmt"
	"strings"
)

// MapError turns a participle error into guidance for the command's usage.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("type a command, e.g. roll 1")
	}

	cmd := strings.Fields(strings.ToLower(input))[0]

	switch cmd {
	case "roll":
		return fmt.Errorf("the command roll must be: roll <die number> | roll all")
	case "count":
		return fmt.Errorf("the command count must be: count <1-10>")
	case "size":
		return fmt.Errorf("the command size must be: size <sides> | size d<sides>")
	case "speed":
		return fmt.Errorf("the command speed must be: speed <multiplier>")
	case "clear", "history", "reset", "settings", "quit", "exit":
		return fmt.Errorf("the command %s takes no arguments", cmd)
	}

	return fmt.Errorf("unknown command %q: %w", cmd, err)
}
