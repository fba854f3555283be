package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/config"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite table",
	Long: `Shows every sprite in the sprite sheet with its region size, glyph
and color. Sprites the game requires are marked with '*'. Exits with an error
when a required sprite is missing.`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	sheet, err := config.LoadSprites(flagSprites)
	if err != nil {
		return err
	}
	catalog, err := assets.NewSheet(sheet)
	if err != nil {
		return err
	}

	names := catalog.Names()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	fmt.Printf("Sprite sheet: %s\n\n", sheet.Image)
	fmt.Printf("    %-*s  %5s  %9s  %5s  %s\n", maxNameLen, "Name", "Index", "Size", "Glyph", "Color")
	fmt.Printf("    %-*s  %5s  %9s  %5s  %s\n", maxNameLen, "----", "-----", "----", "-----", "-----")
	for _, n := range names {
		h, _ := catalog.Resolve(n)
		w, ht := h.Size()
		mark := " "
		if slices.Contains(assets.RequiredSprites, n) {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %5d  %9s  %5q  %s\n",
			mark, maxNameLen, n, h.Index(), fmt.Sprintf("%gx%g", w, ht), h.Glyph(), h.Color())
	}
	fmt.Println()

	// Load fails with every missing required name.
	if _, err := assets.Load(catalog, assets.RequiredSprites); err != nil {
		return err
	}
	fmt.Printf("All %d required sprites present.\n", len(assets.RequiredSprites))
	return nil
}
