/*
Copyright © 2026 Azamat Aubakirov
*/
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/animation"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/engine"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/parser"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const rollProgressSteps = 24

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll every configured die once and print the results",
	Long: `Rolls the saved dice pool without opening the table and prints each
die followed by the total. A notation such as 3d20 or flags override the
saved pool for this roll only; nothing is written back.`,
	Example: `  dragon-dice roll
  dragon-dice roll --notation 4d6
  dragon-dice roll --size 20 --animate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		pool := a.store.Current()
		if notation, _ := cmd.Flags().GetString("notation"); notation != "" {
			count, sides, err := parser.ParseNotation(notation)
			if err != nil {
				return err
			}
			pool.DiceCount, pool.DiceSize = count, sides
		}
		if cmd.Flags().Changed("count") {
			pool.DiceCount, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("size") {
			pool.DiceSize, _ = cmd.Flags().GetInt("size")
		}
		if err := settings.ValidateDiceCount(pool.DiceCount); err != nil {
			return err
		}
		if pool.DiceSize < 1 {
			return fmt.Errorf("dice size must be at least 1, got %d", pool.DiceSize)
		}

		animate, _ := cmd.Flags().GetBool("animate")
		var progress io.Writer
		if animate {
			progress = cmd.ErrOrStderr()
		}
		report := rollPool(pool, engine.NewSource(), progress)

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", pool.Summary(), report.String())
		return nil
	},
}

// rollPool activates every die of the pool at once and lands them when the
// spin ends. A non-nil progress writer gets the spin drawn as a bar.
func rollPool(pool settings.Settings, src engine.Source, progress io.Writer) engine.HistoryReport {
	round := engine.NewRound(pool.DiceCount)
	dice := make([]*engine.Die, pool.DiceCount)
	for i := range dice {
		idx := i
		dice[i] = engine.NewDie(idx, pool.DiceSize, src, nil)
		dice[i].OnRoll(func(outcome int) {
			_ = round.Apply(&engine.DieRolledEvent{Index: idx, Outcome: outcome})
		})
		dice[i].Activate()
	}

	if progress != nil {
		tl := animation.Spin(pool.AnimationSpeed)
		bar := progressbar.NewOptions(rollProgressSteps,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("rolling "+pool.Summary()),
			progressbar.OptionClearOnFinish(),
		)
		step := tl.Duration() / rollProgressSteps
		for i := 0; i < rollProgressSteps; i++ {
			time.Sleep(step)
			_ = bar.Add(1)
		}
		_ = bar.Finish()
	}

	for _, d := range dice {
		d.Complete()
	}
	return round.History()
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rollCmd.Flags().IntP("count", "n", 0, "number of dice for this roll")
	rollCmd.Flags().IntP("size", "d", 0, "sides per die for this roll")
	rollCmd.Flags().String("notation", "", "dice notation for this roll, e.g. 3d6 or d20")
	rollCmd.Flags().Bool("animate", false, "show the spin before printing results")
}
