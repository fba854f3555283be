package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. Sprites are drawn as colored blocks
sized from the sprite sheet. Closing the window quits the game.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	prof, err := startProfile()
	if err != nil {
		return err
	}
	defer prof.Stop()

	machine, err := startMachine(logger)
	if err != nil {
		return err
	}
	input, err := window.NewInput(machine.Config().Bindings)
	if err != nil {
		return err
	}

	logger.Info("opening window", "title", machine.Config().Display.Title)
	return window.Run(machine, input, logger)
}
