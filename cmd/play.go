/*
Copyright © 2026 Azamat Aubakirov
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive dice table",
	Long: `Opens the dice table. Tap a die with its number key to roll it; the
total appears once every die has landed.

Keys:
	1-9, 0    roll die 1-10
	a         new round (clears results, dice wait for you)
	c         clear results
	h         show results
	s         settings
	:         command line (roll 2, size d20, speed 1.5, ...)
	q         quit`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := RunTUI(ctx, a.newSession(), a.feedback); err != nil {
		return fmt.Errorf("fatal TUI error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
