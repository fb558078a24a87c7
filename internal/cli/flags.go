// Package cli holds the flags and logging setup shared by the mandel
// binaries.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/export"
)

// ViewFlags are the engine construction flags.
type ViewFlags struct {
	Width, Height int
	Zoom          float64
	CenterRe      float64
	CenterIm      float64
	Budget        int
	Workers       int
	Julia         string
	PanStep       int
	ZoomFactor    float64
	BudgetStep    int
	Verbose       bool
}

// DefaultViewFlags returns the flag defaults for a window of the given size.
func DefaultViewFlags(width, height int) ViewFlags {
	return ViewFlags{
		Width:      width,
		Height:     height,
		Zoom:       100,
		Budget:     mandel.DefaultBudget,
		PanStep:    mandel.DefaultPanStep,
		ZoomFactor: mandel.DefaultZoomFactor,
		BudgetStep: mandel.DefaultBudgetStep,
	}
}

// Register adds the flags to cmd, using the current field values as defaults.
func (f *ViewFlags) Register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.Width, "width", f.Width, "grid width in pixels")
	fs.IntVar(&f.Height, "height", f.Height, "grid height in pixels")
	fs.Float64Var(&f.Zoom, "zoom", f.Zoom, "pixels per unit of plane distance")
	fs.Float64Var(&f.CenterRe, "center-re", f.CenterRe, "real part of the view center")
	fs.Float64Var(&f.CenterIm, "center-im", f.CenterIm, "imaginary part of the view center")
	fs.IntVar(&f.Budget, "budget", f.Budget, "initial iteration budget")
	fs.IntVar(&f.Workers, "workers", f.Workers, "goroutines per pass (0 = GOMAXPROCS)")
	fs.StringVar(&f.Julia, "julia", f.Julia, `render the Julia set for this constant, e.g. "-0.8+0.156i"`)
	fs.IntVar(&f.PanStep, "pan-step", f.PanStep, "pan distance in pixels")
	fs.Float64Var(&f.ZoomFactor, "zoom-factor", f.ZoomFactor, "zoom multiplier per command")
	fs.IntVar(&f.BudgetStep, "budget-step", f.BudgetStep, "budget change per command")
	fs.BoolVarP(&f.Verbose, "verbose", "v", f.Verbose, "log each command to stderr")
}

// Options converts the flags into engine options.
func (f *ViewFlags) Options() ([]mandel.Option, error) {
	opts := []mandel.Option{
		mandel.WithWorkers(f.Workers),
		mandel.WithPanStep(f.PanStep),
		mandel.WithZoomFactor(f.ZoomFactor),
		mandel.WithBudgetStep(f.BudgetStep),
	}
	if f.Julia != "" {
		c, err := strconv.ParseComplex(f.Julia, 128)
		if err != nil {
			return nil, fmt.Errorf("invalid --julia %q: %w", f.Julia, err)
		}
		opts = append(opts, mandel.WithJulia(c))
	}
	return opts, nil
}

// NewEngine builds an engine from the flags.
func (f *ViewFlags) NewEngine() (*mandel.Engine, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	return mandel.New(mandel.Config{
		Width:  f.Width,
		Height: f.Height,
		Zoom:   f.Zoom,
		Center: complex(f.CenterRe, f.CenterIm),
		Budget: f.Budget,
	}, opts...)
}

// Family returns the name of the fractal family the flags select.
func (f *ViewFlags) Family() string {
	if f.Julia != "" {
		return "julia " + f.Julia
	}
	return "mandelbrot"
}

// Info describes e's current view for captions.
func (f *ViewFlags) Info(e *mandel.Engine) export.Info {
	vp := e.Viewport()
	return export.Info{
		Family: f.Family(),
		Center: vp.Center,
		Zoom:   vp.Zoom,
		Budget: vp.Budget,
		Width:  vp.Width,
		Height: vp.Height,
	}
}

// SetupLogging installs a stderr text logger on the mandel package.
// Without verbose only warnings and errors are shown.
func SetupLogging(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mandel.SetLogger(l)
	return l
}
