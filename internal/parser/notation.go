package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Notation is a dice pool in RPG shorthand: "3d20", "d6".
type Notation struct {
	Count *int   `parser:"@Int?"`
	Size  string `parser:"@DieSize"`
}

var notationParser = participle.MustBuild[Notation](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace"),
)

// ParseNotation reads NdS, defaulting N to 1.
func ParseNotation(input string) (count, sides int, err error) {
	n, err := notationParser.ParseString("", strings.ToLower(strings.TrimSpace(input)))
	if err != nil {
		return 0, 0, fmt.Errorf("dice notation must look like 3d6 or d20: %w", err)
	}
	count = 1
	if n.Count != nil {
		count = *n.Count
	}
	size := SizeCmd{Raw: n.Size}
	return count, size.Sides(), nil
}
