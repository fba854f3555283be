package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/game"
)

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "floppy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig returns the effective game config and sprite catalog.
func loadConfig() (config.GameConfig, *assets.Sheet, error) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	sheet, err := config.LoadSprites(flagSprites)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	catalog, err := assets.NewSheet(sheet)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	return cfg, catalog, nil
}

// startMachine loads configuration and returns a machine already in Splash.
func startMachine(logger *log.Logger) (*game.Machine, error) {
	cfg, catalog, err := loadConfig()
	if err != nil {
		return nil, err
	}
	m, err := game.NewMachine(cfg, catalog, logger)
	if err != nil {
		return nil, err
	}
	if err := m.Start(); err != nil {
		return nil, err
	}
	return m, nil
}

// stopper is what profile.Start returns.
type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

// startProfile starts the profiler named by --profile.
func startProfile() (stopper, error) {
	switch flagProfile {
	case "":
		return noProfile{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	}
	return nil, fmt.Errorf("unknown --profile %q (expected cpu or mem)", flagProfile)
}
