package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/floppy/internal/assets"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/game"
)

var sky = color.RGBA{0x4e, 0xc0, 0xca, 0xff}

// Game adapts a started game.Machine to the ebiten.Game interface.
type Game struct {
	machine *game.Machine
	input   *Input
	state   KeyState
	logger  *log.Logger
	dt      float64
	width   int
	height  int
	images  map[string]*ebiten.Image // placeholder image per sprite name
}

// NewGame wraps machine. Every tick advances the simulation by 1/tick_rate.
func NewGame(machine *game.Machine, input *Input, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	cfg := machine.Config()
	rc := core.RuntimeConfig{
		ScreenW:  int(cfg.Display.Width),
		ScreenH:  int(cfg.Display.Height),
		TickRate: cfg.Display.TickRate,
	}
	return &Game{
		machine: machine,
		input:   input,
		state:   ebitenState{},
		logger:  logger,
		dt:      rc.TickSeconds(),
		width:   rc.ScreenW,
		height:  rc.ScreenH,
		images:  make(map[string]*ebiten.Image),
	}
}

// Update polls input and steps the machine once.
func (g *Game) Update() error {
	in := g.input.Poll(g.state)
	if ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionClose)
	}

	res := g.machine.Step(g.dt, in)
	if res.Trans.Op != game.OpNone {
		g.logger.Debug("window transition", "event", res.Event, "state", res.State)
	}
	if !res.Running {
		return ebiten.Termination
	}
	return nil
}

// Draw renders every sprite as a solid block in its sheet color.
// World y points up, so rows are flipped.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(sky)
	for _, d := range g.machine.Drawables() {
		img := g.image(d.Handle)
		if img == nil {
			continue
		}
		w, h := d.Handle.Size()
		s := d.Transform.Scale

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(d.Transform.X-w*s/2, float64(g.height)-d.Transform.Y-h*s/2)
		screen.DrawImage(img, op)
	}
}

func (g *Game) image(h assets.Handle) *ebiten.Image {
	if h.IsZero() {
		return nil
	}
	if img, ok := g.images[h.Name()]; ok {
		return img
	}
	w, ht := h.Size()
	img := ebiten.NewImage(int(w), int(ht))
	img.Fill(rgba(h.Color()))
	g.images[h.Name()] = img
	return img
}

// Layout returns the fixed logical screen size; Ebitengine scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(machine *game.Machine, input *Input, logger *log.Logger) error {
	cfg := machine.Config()
	g := NewGame(machine, input, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TickRate)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(g)
}
