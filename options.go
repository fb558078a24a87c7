package mandel

import (
	"fmt"
	"log/slog"
	"math"
)

// Defaults for the per-command magnitudes.
const (
	// DefaultPanStep is the pan distance in pixels.
	DefaultPanStep = 10

	// DefaultZoomFactor is the zoom multiplier per zoom command.
	DefaultZoomFactor = 1.1

	// DefaultBudgetStep is the budget change per budget command.
	DefaultBudgetStep = 500

	// DefaultBudgetFloor is the lowest budget DecreaseBudget reaches.
	DefaultBudgetFloor = 500

	// DefaultBudget is used when Config.Budget is zero.
	DefaultBudget = 1000
)

// Option configures an Engine during creation.
//
// Example:
//
//	e, err := mandel.New(cfg,
//	    mandel.WithPanStep(32),
//	    mandel.WithZoomFactor(2),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	panStep     int
	zoomFactor  float64
	budgetStep  int
	budgetFloor int
	workers     int
	julia       *complex128
	logger      *slog.Logger
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		panStep:     DefaultPanStep,
		zoomFactor:  DefaultZoomFactor,
		budgetStep:  DefaultBudgetStep,
		budgetFloor: DefaultBudgetFloor,
		workers:     0, // GOMAXPROCS per pass
	}
}

// validate reports the first unusable option value.
func (o *options) validate() error {
	switch {
	case o.panStep <= 0:
		return fmt.Errorf("%w: pan step %d", ErrInvalidOption, o.panStep)
	case !(o.zoomFactor > 1) || math.IsInf(o.zoomFactor, 0):
		return fmt.Errorf("%w: zoom factor %v", ErrInvalidOption, o.zoomFactor)
	case o.budgetStep <= 0:
		return fmt.Errorf("%w: budget step %d", ErrInvalidOption, o.budgetStep)
	case o.budgetFloor < 1:
		return fmt.Errorf("%w: budget floor %d", ErrInvalidOption, o.budgetFloor)
	case o.julia != nil && !finite(*o.julia):
		return fmt.Errorf("%w: julia constant %v", ErrInvalidOption, *o.julia)
	}
	return nil
}

// WithPanStep sets the pan distance in pixels. A step at least as large as
// the grid dimension along the pan axis recomputes the whole grid.
func WithPanStep(pixels int) Option {
	return func(o *options) {
		o.panStep = pixels
	}
}

// WithZoomFactor sets the multiplier applied by ZoomIn and divided out by
// ZoomOut. It must be greater than 1.
func WithZoomFactor(z float64) Option {
	return func(o *options) {
		o.zoomFactor = z
	}
}

// WithBudgetStep sets the amount IncreaseBudget and DecreaseBudget change
// the budget by.
func WithBudgetStep(step int) Option {
	return func(o *options) {
		o.budgetStep = step
	}
}

// WithBudgetFloor sets the lowest budget DecreaseBudget will go to.
func WithBudgetFloor(floor int) Option {
	return func(o *options) {
		o.budgetFloor = floor
	}
}

// WithWorkers bounds the number of goroutines per pass.
// Zero or negative uses GOMAXPROCS; 1 evaluates on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithJulia renders the filled Julia set for constant c instead of the
// Mandelbrot set.
func WithJulia(c complex128) Option {
	return func(o *options) {
		o.julia = &c
	}
}

// WithLogger sets the logger for one engine, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func finite(c complex128) bool {
	re, im := real(c), imag(c)
	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
