package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/language"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/cli"
	"github.com/gogpu/mandel/internal/export"
)

// fpsWindow is the number of frames averaged per FPS report.
const fpsWindow = 60

// Key repeat timing in ticks, for held keys.
const (
	repeatDelay    = 20
	repeatInterval = 4
)

// bindings maps keys to commands. The first pressed key in order wins, so
// a frame issues at most one command.
var bindings = []struct {
	key ebiten.Key
	cmd mandel.Command
}{
	{ebiten.KeyArrowUp, mandel.CmdPanUp},
	{ebiten.KeyArrowDown, mandel.CmdPanDown},
	{ebiten.KeyArrowLeft, mandel.CmdPanLeft},
	{ebiten.KeyArrowRight, mandel.CmdPanRight},
	{ebiten.KeyA, mandel.CmdZoomIn},
	{ebiten.KeyZ, mandel.CmdZoomOut},
	{ebiten.KeyEqual, mandel.CmdIncreaseBudget},
	{ebiten.KeyBackquote, mandel.CmdDecreaseBudget},
}

// game implements ebiten.Game around an engine.
type game struct {
	engine *mandel.Engine
	flags  *cli.ViewFlags
	log    *slog.Logger

	// img mirrors the engine's color grid on the GPU.
	img *ebiten.Image

	showHUD bool
	hud     string

	frames    int
	frameTime time.Duration
	last      time.Time
}

func newGame(e *mandel.Engine, flags *cli.ViewFlags, log *slog.Logger) *game {
	vp := e.Viewport()
	g := &game{
		engine:  e,
		flags:   flags,
		log:     log,
		img:     ebiten.NewImage(vp.Width, vp.Height),
		showHUD: true,
		last:    time.Now(),
	}
	g.img.WritePixels(e.Image())
	e.Damage()
	g.updateHUD()
	return g
}

// repeating reports whether key was pressed this tick, or has been held long
// enough to auto-repeat.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// nextCommand returns the command for this tick, if any key asks for one.
func nextCommand() (mandel.Command, bool) {
	for _, b := range bindings {
		if repeating(b.key) {
			return b.cmd, true
		}
	}
	return 0, false
}

// Update applies at most one command and uploads the image if it changed.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if cmd, ok := nextCommand(); ok {
		g.engine.Apply(cmd)
		g.updateHUD()
	}
	if g.engine.Damage() != nil {
		g.img.WritePixels(g.engine.Image())
	}

	g.tick()
	return nil
}

// tick accumulates frame time and logs the rate every fpsWindow frames.
func (g *game) tick() {
	now := time.Now()
	g.frameTime += now.Sub(g.last)
	g.last = now
	g.frames++
	if g.frames%fpsWindow != 0 {
		return
	}
	g.log.Info("frame rate",
		"fps", float64(fpsWindow)/g.frameTime.Seconds(),
		"actual_fps", ebiten.ActualFPS())
	g.frameTime = 0
}

func (g *game) updateHUD() {
	info := g.flags.Info(g.engine)
	st := g.engine.Stats()
	g.hud = fmt.Sprintf("%s\nlast: %s, %s px in %s",
		info.Caption(language.English), st.Command, export.FormatCount(language.English, st.Computed), st.Duration.Round(time.Microsecond))
}

// Draw presents the fractal and the overlay.
func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
	if g.showHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nFPS %.1f", g.hud, ebiten.ActualFPS()))
	}
}

// Layout keeps the logical screen at the grid size.
func (g *game) Layout(int, int) (int, int) {
	vp := g.engine.Viewport()
	return vp.Width, vp.Height
}
