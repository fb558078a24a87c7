// Package grid holds the iteration-count grid and the color grid of a
// fixed-size viewport, and implements the region passes that keep them
// current: compute, compute-unresolved, colorize and shift.
//
// Both grids are flat and row-major. Passes split their region into tiles
// and evaluate the tiles on an ephemeral worker pool; every pixel writes
// only its own cell, so tiles need no locking and the pass returns only
// after every tile is done.
//
// A Buffer is not safe for concurrent use: one goroutine issues passes,
// the pool inside a pass is private to that pass.
package grid

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/mandel/internal/cache"
	"github.com/gogpu/mandel/internal/color"
	"github.com/gogpu/mandel/internal/parallel"
	"github.com/gogpu/mandel/internal/plane"
)

// BytesPerPixel is the size of one RGBA8 cell of the color grid.
const BytesPerPixel = 4

// paletteCacheSize is the number of per-budget color tables kept.
const paletteCacheSize = 4

// Buffer owns the iteration grid and the color grid of one viewport.
//
// Every cell of the iteration grid holds either an escape count computed
// under some earlier view and budget, or plane.Unresolved. The color grid
// holds the RGBA8 color of the corresponding count.
type Buffer[F plane.Float] struct {
	width, height int

	// iters is the iteration grid, width*height cells.
	iters []int32

	// pix is the color grid, width*height*4 bytes.
	pix []byte

	// damage records tiles changed since the host last asked.
	damage *parallel.DirtyRegion

	// workers bounds the pool size of a pass; <= 0 means GOMAXPROCS.
	workers int

	// palettes holds the color tables of recently used budgets.
	palettes *cache.LRU[int, *color.Palette]
}

// NewBuffer allocates a width × height buffer. Every iteration cell starts
// Unresolved and every color cell transparent, which is already a
// consistent pair. width and height must be positive.
func NewBuffer[F plane.Float](width, height, workers int) *Buffer[F] {
	if width <= 0 || height <= 0 {
		panic("grid: non-positive buffer size")
	}

	b := &Buffer[F]{
		width:    width,
		height:   height,
		iters:    make([]int32, width*height),
		pix:      make([]byte, width*height*BytesPerPixel),
		damage:   parallel.NewDirtyRegion(width, height),
		workers:  workers,
		palettes: cache.New[int, *color.Palette](paletteCacheSize),
	}
	for i := range b.iters {
		b.iters[i] = plane.Unresolved
	}
	return b
}

// Width returns the grid width in pixels.
func (b *Buffer[F]) Width() int { return b.width }

// Height returns the grid height in pixels.
func (b *Buffer[F]) Height() int { return b.height }

// Bounds returns the pixel rectangle covered by the grid.
func (b *Buffer[F]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the live color grid as tightly packed row-major RGBA8.
// The slice aliases the buffer and changes with the next pass.
func (b *Buffer[F]) Pix() []byte { return b.pix }

// Iterations returns the live iteration grid.
func (b *Buffer[F]) Iterations() []int32 { return b.iters }

// At returns the stored count of pixel (x, y). Out-of-range coordinates
// panic like any slice index.
func (b *Buffer[F]) At(x, y int) int {
	return int(b.iters[y*b.width+x])
}

// TakeDamage returns the tile rectangles changed since the last call and
// clears them.
func (b *Buffer[F]) TakeDamage() []image.Rectangle {
	return b.damage.TakeRects()
}

// PaletteStats reports the hit rate of the per-budget color table cache.
func (b *Buffer[F]) PaletteStats() cache.Stats {
	return b.palettes.Stats()
}

// Compute evaluates every pixel of r (clipped to the grid) under view,
// family and budget and overwrites its iteration cell. It returns the
// number of cells written.
func (b *Buffer[F]) Compute(r image.Rectangle, view plane.View[F], family plane.Family[F], budget int) int {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return 0
	}

	b.forTiles(r, func(tile image.Rectangle) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			row := b.iters[y*b.width : (y+1)*b.width]
			for x := tile.Min.X; x < tile.Max.X; x++ {
				row[x] = int32(family.Escape(view.At(x, y), budget))
			}
		}
	})
	b.damage.MarkRect(r)
	return r.Dx() * r.Dy()
}

// ComputeUnresolved re-evaluates only the cells holding plane.Unresolved.
// Cells with a positive count keep it: an orbit that escaped at step k
// escapes at step k under any larger budget. It returns the number of cells
// re-evaluated.
func (b *Buffer[F]) ComputeUnresolved(view plane.View[F], family plane.Family[F], budget int) int {
	var evaluated atomic.Int64

	b.forTiles(b.Bounds(), func(tile image.Rectangle) {
		n := 0
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			row := b.iters[y*b.width : (y+1)*b.width]
			for x := tile.Min.X; x < tile.Max.X; x++ {
				if row[x] != plane.Unresolved {
					continue
				}
				row[x] = int32(family.Escape(view.At(x, y), budget))
				n++
			}
		}
		if n > 0 {
			b.damage.MarkRect(tile)
			evaluated.Add(int64(n))
		}
	})
	return int(evaluated.Load())
}

// Colorize rewrites the color cell of every pixel of r (clipped to the grid)
// from its iteration cell, normalized by budget. It returns the number of
// cells written.
func (b *Buffer[F]) Colorize(r image.Rectangle, budget int) int {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return 0
	}

	palette := b.palettes.GetOrCreate(budget, func() *color.Palette {
		return color.NewPalette(budget)
	})
	b.forTiles(r, func(tile image.Rectangle) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			i := y*b.width + tile.Min.X
			for x := tile.Min.X; x < tile.Max.X; x++ {
				palette.At(int(b.iters[i])).Put(b.pix[i*BytesPerPixel:])
				i++
			}
		}
	})
	b.damage.MarkRect(r)
	return r.Dx() * r.Dy()
}

// forTiles runs fn once per tile of r on an ephemeral pool.
func (b *Buffer[F]) forTiles(r image.Rectangle, fn func(tile image.Rectangle)) {
	tiles := parallel.Split(r)
	work := make([]func(), len(tiles))
	for i, tile := range tiles {
		work[i] = func() { fn(tile) }
	}
	parallel.Run(b.workers, work)
}
