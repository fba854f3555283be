package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the game configuration the same way 'play' does (--config,
then ~/.floppy/configs/floppy.yaml, then ./configs/floppy.yaml, then the
built-in defaults), validates it, and prints the result as YAML.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
