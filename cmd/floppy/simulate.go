package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/game"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagPauseAt   int
	flagPauseFor  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the final state",
	Long: `Drive the game without a front-end: confirm through the splash and
ready screens, then flap every N play ticks. Runs with the same config are
deterministic, which makes this useful for checking physics changes.

Examples:
  floppy simulate
  floppy simulate --ticks 1200 --flap-every 30
  floppy simulate --pause-at 100 --pause-for 60`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Flap every N play ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagPauseAt, "pause-at", 0, "Pause at this play tick (0 = never)")
	simulateCmd.Flags().IntVar(&flagPauseFor, "pause-for", 30, "Ticks to stay paused")
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)

func runSimulate(cmd *cobra.Command, args []string) error {
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

	script := game.Script{
		Ticks:     flagTicks,
		DT:        1.0 / float64(machine.Config().Display.TickRate),
		FlapEvery: flagFlapEvery,
		PauseAt:   flagPauseAt,
		PauseFor:  flagPauseFor,
	}
	sum := script.Run(machine)

	row := func(label string, value any) {
		fmt.Printf("%s %v\n", labelStyle.Render(label), value)
	}
	row("steps", sum.Steps)
	row("play ticks", sum.PlayTicks)
	row("transitions", sum.Transitions)
	row("state", sum.State)
	row("running", sum.Running)
	if sum.HasPlayer {
		row("player y", fmt.Sprintf("%.3f", sum.Player.Y))
		row("speed", fmt.Sprintf("%.3f", sum.Gravity.VerticalSpeed))
	}
	for _, d := range machine.Drawables() {
		if d.Transform.Z > 0.1 {
			continue
		}
		row(d.Handle.Name(), fmt.Sprintf("x=%.3f", d.Transform.X))
	}
	return nil
}
