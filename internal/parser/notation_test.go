package parser_test

import (
	"testing"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in    string
		count int
		sides int
	}{
		{"3d6", 3, 6},
		{"d20", 1, 20},
		{"10D100", 10, 100},
		{" 2d8 ", 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			count, sides, err := parser.ParseNotation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.sides, sides)
		})
	}
}

func TestParseNotationRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "3", "three d6", "3d6+2"} {
		_, _, err := parser.ParseNotation(in)
		assert.Error(t, err, in)
	}
}
