package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/engine"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempStore points the commands at a fresh file store and log.
func useTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	viper.Set("store.driver", "file")
	viper.Set("store.path", path)
	viper.Set("log.file", filepath.Join(dir, "dragon-dice.log"))
	viper.Set("log.level", "debug")
	viper.Set("haptics", false)
	return path
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSettingsShowDefaults(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Dice count:      2")
	assert.Contains(t, out, "Dice size:       d6")
	assert.Contains(t, out, "Animation speed: 1x")

	out, err = run(t, "", "settings", "show", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"diceCount":2,"diceSize":6,"animationSpeed":1}`, out)

	out, err = run(t, "", "settings", "show", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "diceCount: 2")
	assert.Contains(t, out, "diceSize: 6")

	_, err = run(t, "", "settings", "show", "--format", "toml")
	assert.Error(t, err)
}

func TestSettingsSetPersists(t *testing.T) {
	useTempStore(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"count", "4"}, "Dice count:      4"},
		{[]string{"size", "d20"}, "Dice size:       d20"},
		{[]string{"size", "100"}, "Dice size:       d100"},
		{[]string{"speed", "1.5x"}, "Animation speed: 1.5x"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", append([]string{"settings", "set"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	out, err := run(t, "", "settings", "show", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"diceCount":4,"diceSize":100,"animationSpeed":1.5}`, out)
}

func TestSettingsSetRejectsInvalid(t *testing.T) {
	useTempStore(t)

	for _, args := range [][]string{
		{"count", "0"},
		{"count", "11"},
		{"count", "many"},
		{"size", "7"},
		{"speed", "0"},
		{"colour", "red"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, "", append([]string{"settings", "set"}, args...)...)
			assert.Error(t, err)
		})
	}

	out, err := run(t, "", "settings", "show", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"diceCount":2,"diceSize":6,"animationSpeed":1}`, out)
}

func TestSettingsReset(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "", "settings", "set", "count", "7")
	require.NoError(t, err)

	out, err := run(t, "n\n", "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset cancelled.")

	out, err = run(t, "y\n", "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Dice count:      2")

	_, err = run(t, "", "settings", "set", "size", "12")
	require.NoError(t, err)
	out, err = run(t, "", "settings", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Dice size:       d6")
}

func TestRollCommand(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "", "roll")
	require.NoError(t, err)
	assert.Contains(t, out, "2 dice d6")
	assert.Contains(t, out, "Die 1: ")
	assert.Contains(t, out, "Die 2: ")
	assert.Contains(t, out, "Total: ")
	assert.NotContains(t, out, "incomplete")

	out, err = run(t, "", "roll", "--notation", "3d8")
	require.NoError(t, err)
	assert.Contains(t, out, "3 dice d8")
	assert.Contains(t, out, "Die 3: ")

	out, err = run(t, "", "roll", "--count", "1", "--size", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "1 die d20")

	out, err = run(t, "", "settings", "show", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"diceCount":2,"diceSize":6,"animationSpeed":1}`, out, "a roll never writes settings")
}

func TestRollPool(t *testing.T) {
	pool := settings.Settings{DiceCount: 3, DiceSize: 6, AnimationSpeed: 1}
	report := rollPool(pool, engine.NewQueueSource(4, 2, 6), nil)

	require.True(t, report.Complete)
	assert.Equal(t, 12, report.Total)
	assert.Equal(t, []engine.HistoryLine{{Die: 1, Outcome: 4}, {Die: 2, Outcome: 2}, {Die: 3, Outcome: 6}}, report.Lines)
}

func TestRollCommandRejectsBadInput(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "", "roll", "--notation", "three d6")
	assert.Error(t, err)

	_, err = run(t, "", "roll", "--count", "11")
	assert.Error(t, err)

	_, err = run(t, "", "roll", "--size", "0")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	version, _, _ := buildVersion()

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dragon-dice version "+version)
	assert.Contains(t, out, "OS/Arch: ")

	out, err = run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
