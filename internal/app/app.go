//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tileworld/internal/core"
	"tileworld/internal/render"
	"tileworld/internal/ui"
)

// Game adapts a world generator to the ebiten.Game interface. Generation is
// synchronous; the view only changes on a key press or a HUD edit.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	palette  []color.RGBA
	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for gen. The generator must already hold a world.
func New(gen core.Generator, scale, hudWidth int, seed int64, log *slog.Logger) *Game {
	size := gen.Size()
	g := &Game{
		gen:      gen,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(gen, scale),
		hud:      ui.NewHUD(gen, hudWidth),
		log:      log,
		scale:    max(scale, 1),
		hudWidth: max(hudWidth, 0),
		seed:     seed,
	}
	if pp, ok := gen.(core.PaletteProvider); ok {
		g.palette = pp.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	g.updateTitle()
	return g
}

// Reset regenerates the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.gen.Reset(seed); err != nil {
		g.log.Error("regenerate failed", "seed", seed, "err", err)
		return
	}
	g.hud.Regenerated()
	g.updateTitle()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.Reset(g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.Reset(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.Reset(g.seed + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.cycleLayer()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyShareCommand()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		size := g.gen.Size()
		g.hud.Update(size.W * g.scale)
	}
	return nil
}

func (g *Game) cycleLayer() {
	ls, ok := g.gen.(core.LayerSelector)
	if !ok || len(ls.Layers()) == 0 {
		return
	}
	ls.SetLayer((ls.Layer() + 1) % len(ls.Layers()))
	g.updateTitle()
}

func (g *Game) copyShareCommand() {
	cmd := ShareCommand(g.gen, g.seed)
	if err := clipboard.WriteAll(cmd); err != nil {
		g.log.Warn("clipboard unavailable", "err", err)
		return
	}
	g.log.Info("copied generation command", "cmd", cmd)
}

func (g *Game) updateTitle() {
	title := fmt.Sprintf("tileworld %s seed %d", g.gen.Name(), g.seed)
	if ls, ok := g.gen.(core.LayerSelector); ok {
		if names := ls.Layers(); ls.Layer() < len(names) {
			title += " [" + names[ls.Layer()] + "]"
		}
	}
	ebiten.SetWindowTitle(title)
}

// Draw renders the current world, the overlays and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.gen.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		size := g.gen.Size()
		g.hud.Draw(screen, size.W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
