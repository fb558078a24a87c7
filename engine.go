package mandel

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/mandel/internal/grid"
	"github.com/gogpu/mandel/internal/plane"
)

// Config holds the construction parameters of an Engine.
type Config struct {
	// Width and Height are the grid size in pixels, fixed for the engine's
	// lifetime.
	Width, Height int

	// Zoom is the number of pixels per unit of plane distance.
	Zoom float64

	// Center is the plane point shown at pixel (Width/2, Height/2).
	Center complex128

	// Budget is the initial iteration budget. Zero selects DefaultBudget.
	Budget int
}

// Engine renders a fixed-size view of the Mandelbrot set and keeps it current
// across pan, zoom and budget commands, reusing as much of the previous grid
// as each command allows.
//
// Commands are synchronous and total: when one returns, the image reflects
// the new view. Engine is not safe for concurrent use.
type Engine struct {
	buf    *grid.Buffer[float64]
	view   plane.View[float64]
	family plane.Family[float64]
	budget int
	opts   options
	stats  Stats
}

// New creates an engine and performs the initial full compute and colorize.
//
// It returns an error wrapping ErrInvalidSize, ErrInvalidZoom,
// ErrInvalidCenter, ErrInvalidBudget or ErrInvalidOption when cfg or an
// option is unusable.
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	if cfg.Budget == 0 {
		cfg.Budget = DefaultBudget
	}
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	case !(cfg.Zoom > 0) || math.IsInf(cfg.Zoom, 0):
		return nil, fmt.Errorf("%w: %v", ErrInvalidZoom, cfg.Zoom)
	case !finite(cfg.Center):
		return nil, fmt.Errorf("%w: %v", ErrInvalidCenter, cfg.Center)
	case cfg.Budget < o.budgetFloor || cfg.Budget > math.MaxInt32:
		return nil, fmt.Errorf("%w: %d (floor %d)", ErrInvalidBudget, cfg.Budget, o.budgetFloor)
	}

	e := &Engine{
		buf: grid.NewBuffer[float64](cfg.Width, cfg.Height, o.workers),
		view: plane.View[float64]{
			Center: plane.FromComplex[float64](cfg.Center),
			Zoom:   cfg.Zoom,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		family: plane.Mandelbrot[float64]{},
		budget: cfg.Budget,
		opts:   o,
	}
	if o.julia != nil {
		e.family = plane.Julia[float64]{C: plane.FromComplex[float64](*o.julia)}
	}

	start := time.Now()
	e.stats = Stats{Command: cmdNone}
	e.recomputeAll()
	e.stats.Duration = time.Since(start)

	e.logger().Info("mandel: engine created",
		"width", cfg.Width,
		"height", cfg.Height,
		"zoom", cfg.Zoom,
		"center", cfg.Center,
		"budget", cfg.Budget,
		"family", e.family.Name(),
		"duration", e.stats.Duration)
	return e, nil
}

// logger returns the engine's logger, falling back to the package logger so
// a later SetLogger takes effect.
func (e *Engine) logger() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return Logger()
}

// PanUp moves the view up by the pan step.
func (e *Engine) PanUp() { e.Pan(PanUp) }

// PanDown moves the view down by the pan step.
func (e *Engine) PanDown() { e.Pan(PanDown) }

// PanLeft moves the view left by the pan step.
func (e *Engine) PanLeft() { e.Pan(PanLeft) }

// PanRight moves the view right by the pan step.
func (e *Engine) PanRight() { e.Pan(PanRight) }

// ZoomIn magnifies the view by the zoom factor.
func (e *Engine) ZoomIn() { e.Zoom(ZoomIn) }

// ZoomOut demagnifies the view by the zoom factor.
func (e *Engine) ZoomOut() { e.Zoom(ZoomOut) }

// IncreaseBudget raises the iteration budget by the budget step.
func (e *Engine) IncreaseBudget() { e.AdjustBudget(BudgetIncrease) }

// DecreaseBudget lowers the iteration budget by the budget step, unless that
// would go below the floor.
func (e *Engine) DecreaseBudget() { e.AdjustBudget(BudgetDecrease) }

// Pan moves the center by the pan step along one axis, shifts the existing
// grid the opposite way, and computes only the strip uncovered at the
// leading edge.
func (e *Engine) Pan(d PanDirection) {
	s := e.opts.panStep
	step := float64(s) / e.view.Zoom

	var cmd Command
	var dx, dy int
	switch d {
	case PanUp:
		cmd, dy = CmdPanUp, s
		e.view.Center.Im -= step
	case PanDown:
		cmd, dy = CmdPanDown, -s
		e.view.Center.Im += step
	case PanLeft:
		cmd, dx = CmdPanLeft, s
		e.view.Center.Re -= step
	case PanRight:
		cmd, dx = CmdPanRight, -s
		e.view.Center.Re += step
	default:
		return
	}

	e.run(cmd, func() {
		for _, r := range e.buf.Shift(dx, dy) {
			e.compute(r)
			e.stats.Colorized += e.buf.Colorize(r, e.budget)
		}
	})
}

// Zoom scales the view about its center and recomputes the whole grid.
func (e *Engine) Zoom(d ZoomDirection) {
	var cmd Command
	switch d {
	case ZoomIn:
		cmd = CmdZoomIn
		e.view.Zoom *= e.opts.zoomFactor
	case ZoomOut:
		cmd = CmdZoomOut
		e.view.Zoom /= e.opts.zoomFactor
	default:
		return
	}

	e.run(cmd, e.recomputeAll)
}

// AdjustBudget raises or lowers the iteration budget.
//
// Raising evaluates only cells that have not escaped yet, then recolors the
// whole grid. Lowering leaves the grid untouched, so counts resolved under
// the larger budget are kept, and is a no-op when it would go below the
// floor.
func (e *Engine) AdjustBudget(d BudgetDirection) {
	switch d {
	case BudgetIncrease:
		if e.budget > math.MaxInt32-e.opts.budgetStep {
			e.run(CmdIncreaseBudget, func() {})
			return
		}
		e.budget += e.opts.budgetStep
		e.run(CmdIncreaseBudget, func() {
			e.stats.Computed = e.buf.ComputeUnresolved(e.view, e.family, e.budget)
			e.stats.Colorized = e.buf.Colorize(e.buf.Bounds(), e.budget)
		})
	case BudgetDecrease:
		if e.budget-e.opts.budgetStep < e.opts.budgetFloor {
			e.run(CmdDecreaseBudget, func() {})
			return
		}
		e.budget -= e.opts.budgetStep
		e.run(CmdDecreaseBudget, func() {})
	}
}

// run resets the stats for cmd, runs the passes and logs the outcome.
func (e *Engine) run(cmd Command, passes func()) {
	start := time.Now()
	e.stats = Stats{Command: cmd}
	passes()
	e.stats.Budget = e.budget
	e.stats.Duration = time.Since(start)

	e.logger().Debug("mandel: command",
		"cmd", cmd.String(),
		"computed", e.stats.Computed,
		"colorized", e.stats.Colorized,
		"regions", len(e.stats.ComputeRegions),
		"budget", e.budget,
		"zoom", e.view.Zoom,
		"duration", e.stats.Duration)
}

// recomputeAll computes and colorizes the entire grid.
func (e *Engine) recomputeAll() {
	all := e.buf.Bounds()
	e.compute(all)
	e.stats.Colorized += e.buf.Colorize(all, e.budget)
	e.stats.Budget = e.budget
}

// compute evaluates region r under the current view and records it.
func (e *Engine) compute(r image.Rectangle) {
	e.stats.Computed += e.buf.Compute(r, e.view, e.family, e.budget)
	e.stats.ComputeRegions = append(e.stats.ComputeRegions, r)
}

// Image returns the current color grid as tightly packed row-major RGBA8,
// Width*Height*4 bytes, ready for upload as a texture of the same size.
//
// The slice aliases the engine's buffer: it is valid until the next command
// and must not be modified. Use Snapshot for a private copy.
func (e *Engine) Image() []byte {
	return e.buf.Pix()
}

// Snapshot returns a copy of the current color grid as an image.
func (e *Engine) Snapshot() *image.RGBA {
	img := image.NewRGBA(e.buf.Bounds())
	copy(img.Pix, e.buf.Pix())
	return img
}

// Iteration returns the stored escape count of pixel (x, y), or -1 when the
// point had not escaped under the budget it was computed with.
// Coordinates must lie inside the grid.
func (e *Engine) Iteration(x, y int) int {
	return e.buf.At(x, y)
}

// PlaneAt returns the plane point pixel (x, y) maps to under the current view.
func (e *Engine) PlaneAt(x, y int) complex128 {
	return e.view.At(x, y).Complex()
}

// Damage returns the pixel rectangles whose colors changed since the last
// call, and clears them. Hosts that upload partial textures can use it; a
// nil result means nothing changed.
func (e *Engine) Damage() []image.Rectangle {
	return e.buf.TakeDamage()
}

// Stats returns instrumentation for the most recent command, or for
// construction if no command has run.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.ComputeRegions = append([]image.Rectangle(nil), s.ComputeRegions...)
	return s
}
