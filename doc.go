// Package mandel is an incremental Mandelbrot render engine.
//
// # Overview
//
// An Engine owns a fixed-size grid of escape counts and the RGBA8 image
// colored from it. The host drives it with eight discrete commands (pan in
// four directions, zoom in and out, raise and lower the iteration budget)
// and reads the image back after each one. Every command leaves the image
// fully consistent with the new viewport before it returns.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	e, err := mandel.New(mandel.Config{
//	    Width:  800,
//	    Height: 600,
//	    Zoom:   100,
//	    Budget: 1000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	e.ZoomIn()
//	e.PanLeft()
//	upload(e.Image()) // width*height*4 bytes of RGBA8
//
// # Incremental Recompute
//
// Commands reuse as much of the previous grid as is still valid:
//
//   - Pan shifts both grids by the pan step and evaluates only the strip
//     uncovered at the leading edge.
//   - IncreaseBudget evaluates only cells that did not escape under the old
//     budget, then recolors everything, since color normalization depends on
//     the budget.
//   - DecreaseBudget lowers the budget without touching the grid; counts
//     resolved under the larger budget are retained.
//   - Zoom changes the plane coordinate of nearly every pixel and recomputes
//     the whole grid.
//
// # Concurrency
//
// Each compute or colorize pass is split into 64x64 tiles and evaluated on
// a worker pool that exists only for the duration of the pass. The Engine
// itself is not safe for concurrent use; one goroutine issues commands.
//
// # Logging
//
// The package is silent by default. Call SetLogger, or pass WithLogger to
// New, to receive a debug record per command and an info record on
// construction.
package mandel
