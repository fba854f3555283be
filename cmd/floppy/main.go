// floppy is a side-scrolling arcade game that runs in a terminal or a window.
//
// Usage:
//
//	floppy play              - Play in the terminal
//	floppy window            - Play in a desktop window
//	floppy simulate          - Run the game headless and print the final state
//	floppy sprites           - List the resolved sprite table
//	floppy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search order, then embedded)
//	--sprites <path>    - Sprite sheet YAML
//	--fps <rate>        - Override display.tick_rate
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn, error
//	--profile <kind>    - cpu or mem; writes a profile to the current directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSprites  string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
	flagProfile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floppy",
	Short: "Floppy - a flappy side-scroller for terminals and windows",
	Long: `Floppy is a small side-scrolling arcade game. The same simulation
runs in the terminal (play), in a desktop window (window), or headless
(simulate).

Examples:
  floppy play
  floppy window --config ./my-floppy.yaml
  floppy simulate --ticks 600 --flap-every 25
  floppy sprites
  floppy config > floppy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to sprite sheet YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile the run: cpu or mem")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}
