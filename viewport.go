package mandel

import (
	"image"
	"time"
)

// Viewport is the current pixel-to-plane mapping and iteration budget.
type Viewport struct {
	Center        complex128
	Zoom          float64
	Width, Height int
	Budget        int
}

// PixelSize returns the plane distance covered by one pixel.
func (v Viewport) PixelSize() float64 {
	return 1 / v.Zoom
}

// Viewport returns the engine's current view state.
func (e *Engine) Viewport() Viewport {
	return Viewport{
		Center: e.view.Center.Complex(),
		Zoom:   e.view.Zoom,
		Width:  e.view.Width,
		Height: e.view.Height,
		Budget: e.budget,
	}
}

// Stats describes the work done by one command.
type Stats struct {
	// Command is the command measured. Construction reports as "init".
	Command Command

	// Computed is the number of cells evaluated by the escape iteration.
	Computed int

	// Colorized is the number of color cells rewritten.
	Colorized int

	// ComputeRegions lists the rectangles passed to region compute.
	// A budget increase evaluates scattered cells and lists none.
	ComputeRegions []image.Rectangle

	// Budget is the budget after the command.
	Budget int

	// Duration is the wall time of the command's passes.
	Duration time.Duration
}
