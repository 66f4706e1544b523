package parser_test

import (
	"testing"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRollDie(t *testing.T) {
	cmd, err := parser.Parse("roll 3")
	require.NoError(t, err)
	require.NotNil(t, cmd.Roll)
	require.NotNil(t, cmd.Roll.Die)
	assert.Equal(t, 3, *cmd.Roll.Die)
	assert.False(t, cmd.Roll.All)
}

func TestParseRollAll(t *testing.T) {
	cmd, err := parser.Parse("  ROLL All ")
	require.NoError(t, err)
	require.NotNil(t, cmd.Roll)
	assert.True(t, cmd.Roll.All)
	assert.Nil(t, cmd.Roll.Die)
}

func TestParseSize(t *testing.T) {
	for _, in := range []string{"size 20", "size d20", "Size D20"} {
		cmd, err := parser.Parse(in)
		require.NoError(t, err, in)
		require.NotNil(t, cmd.Size, in)
		assert.Equal(t, 20, cmd.Size.Sides(), in)
	}
}

func TestParseSpeed(t *testing.T) {
	tests := map[string]float64{
		"speed 1.25": 1.25,
		"speed 2":    2,
		"speed .5":   0.5,
	}
	for in, want := range tests {
		cmd, err := parser.Parse(in)
		require.NoError(t, err, in)
		require.NotNil(t, cmd.Speed, in)
		assert.Equal(t, want, cmd.Speed.Value, in)
	}
}

func TestParseKeywordsOnly(t *testing.T) {
	cmd, err := parser.Parse("count 4")
	require.NoError(t, err)
	require.NotNil(t, cmd.Count)
	assert.Equal(t, 4, cmd.Count.Value)

	for in, check := range map[string]func(*parser.Command) bool{
		"clear":    func(c *parser.Command) bool { return c.Clear != nil },
		"history":  func(c *parser.Command) bool { return c.History != nil },
		"reset":    func(c *parser.Command) bool { return c.Reset != nil },
		"settings": func(c *parser.Command) bool { return c.Settings != nil },
		"quit":     func(c *parser.Command) bool { return c.Quit != nil },
		"exit":     func(c *parser.Command) bool { return c.Quit != nil },
	} {
		cmd, err := parser.Parse(in)
		require.NoError(t, err, in)
		assert.True(t, check(cmd), in)
	}
}

func TestParseErrorsGiveUsage(t *testing.T) {
	_, err := parser.Parse("roll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roll <die number>")

	_, err = parser.Parse("size big")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size <sides>")

	_, err = parser.Parse("fireball")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "fireball"`)

	_, err = parser.Parse("")
	assert.Error(t, err)
}
