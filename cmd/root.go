/*
Copyright © 2026 Azamat Aubakirov
*/
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dragon-dice",
	Short: "Roll polyhedral dice in your terminal",
	Long: `Dragon Dice rolls a configurable set of polyhedral dice with a short
spin animation and adds up the results.

Run without arguments to open the interactive table. Preferences (dice
count, die size, animation speed) are remembered between sessions.`,
	RunE: runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dragon-dice.yaml)")
	rootCmd.PersistentFlags().String("store", "", "settings backend: file, sqlite, redis or memory")
	rootCmd.PersistentFlags().String("store-path", "", "settings file or database location")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	_ = viper.BindPFlag("store.driver", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store-path"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("store.driver", "file")
	viper.SetDefault("store.redis_addr", "localhost:6379")
	viper.SetDefault("store.redis_db", 0)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("haptics", true)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dragon-dice")
	}

	viper.SetEnvPrefix("DRAGON_DICE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	_ = viper.ReadInConfig()
}
