package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Default controls (see 'floppy config' for the bindings table):
  Space/Up/W/Click - Flap
  Enter            - Start / leave a run
  P                - Pause and resume
  Esc/Q/Ctrl+C     - Quit

The terminal owns stdout while playing, so logs are discarded unless
--log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
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
	keys, err := tui.NewKeyMap(machine.Config().Bindings)
	if err != nil {
		return err
	}

	// Get terminal size; the model also follows resize events.
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = machine.Config().Display.TickRate

	logger.Info("starting terminal game", "width", rc.ScreenW, "height", rc.ScreenH, "tps", rc.TickRate)
	return tui.Run(machine, keys, rc, logger)
}
