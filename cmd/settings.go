/*
Copyright © 2026 Azamat Aubakirov
*/
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the saved dice preferences",
	Long: `Reads and writes the same preferences the interactive settings screen
uses: dice count (1-10), die size (4, 6, 8, 10, 12, 20, 100) and
animation speed (0.5x to 2.0x).`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer a.Close()

		format, _ := cmd.Flags().GetString("format")
		return printSettings(cmd, a.store.Current(), format)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <count|size|speed> <value>",
	Short:     "Change one preference",
	Example:   "  dragon-dice settings set size 20\n  dragon-dice settings set speed 1.5",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"count", "size", "speed"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		field, raw := strings.ToLower(args[0]), args[1]
		switch field {
		case "count":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("dice count must be a number: %w", err)
			}
			if err := settings.ValidateDiceCount(n); err != nil {
				return err
			}
			err = a.store.UpdateDiceCount(ctx, n)
			if err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		case "size":
			n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(raw), "d"))
			if err != nil {
				return fmt.Errorf("dice size must be a number: %w", err)
			}
			if err := settings.ValidateDiceSize(n); err != nil {
				return err
			}
			if err := a.store.UpdateDiceSize(ctx, n); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		case "speed":
			x, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(raw), "x"), 64)
			if err != nil {
				return fmt.Errorf("animation speed must be a number: %w", err)
			}
			if err := settings.ValidateAnimationSpeed(x); err != nil {
				return err
			}
			if err := a.store.UpdateAnimationSpeed(ctx, x); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		default:
			return fmt.Errorf("unknown setting %q, expected count, size or speed", field)
		}

		return printSettings(cmd, a.store.Current(), "text")
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences (2 dice, d6, 1.0x)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "Reset all settings to their defaults? [y/N]: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if scanner.Scan() {
				answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
				yes = answer == "y" || answer == "yes"
			}
		}
		if !yes {
			fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
			return nil
		}

		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.store.ResetToDefaults(ctx); err != nil {
			return fmt.Errorf("settings only partly reset: %w", err)
		}
		return printSettings(cmd, a.store.Current(), "text")
	},
}

func printSettings(cmd *cobra.Command, s settings.Settings, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "", "text":
		fmt.Fprintf(out, "Dice count:      %d\n", s.DiceCount)
		fmt.Fprintf(out, "Dice size:       d%d\n", s.DiceSize)
		fmt.Fprintf(out, "Animation speed: %gx\n", s.AnimationSpeed)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(s)
	default:
		return fmt.Errorf("unknown format %q, expected text, json or yaml", format)
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsResetCmd)

	settingsShowCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	settingsResetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
