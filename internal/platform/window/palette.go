package window

import (
	"image/color"

	"github.com/vovakirdan/floppy/internal/core"
)

// palette approximates the terminal colors used by the sprite sheet.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:         {0x54, 0x9c, 0x30, 0xff},
	core.ColorYellow:        {0xde, 0xd8, 0x95, 0xff},
	core.ColorBlue:          {0x1c, 0x2a, 0x4a, 0xff},
	core.ColorMagenta:       {0xa0, 0x40, 0xa0, 0xff},
	core.ColorCyan:          {0x4e, 0xc0, 0xca, 0xff},
	core.ColorWhite:         {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBrightRed:     {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen:   {0x73, 0xbf, 0x2e, 0xff},
	core.ColorBrightBlue:    {0x50, 0x80, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x70, 0xff, 0xff},
	core.ColorBrightCyan:    {0x80, 0xff, 0xff, 0xff},
	core.ColorBrightYellow:  {0xf8, 0xc8, 0x30, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xe8, 0x6a, 0x17, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
