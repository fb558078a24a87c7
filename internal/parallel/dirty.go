package parallel

import (
	"image"
	"math/bits"
	"sync/atomic"
)

// DirtyRegion tracks which tiles of a pixel grid changed since the host last
// collected them, using an atomic bitmap.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per word).
// Workers of a pass mark their own tile concurrently; the control goroutine
// drains the bitmap with TakeRects. All methods are safe for concurrent use
// without external synchronization.
type DirtyRegion struct {
	// words is the atomic bitmap where each bit represents a tile's dirty state.
	// Bit index = ty * tilesX + tx
	words []atomic.Uint64

	tilesX, tilesY int

	// bounds is the pixel grid the tiles cover; edge tiles are clipped to it.
	bounds image.Rectangle
}

// NewDirtyRegion creates a tracker for a width × height pixel grid.
// All tiles start clean. Returns nil if dimensions are zero or negative.
func NewDirtyRegion(width, height int) *DirtyRegion {
	if width <= 0 || height <= 0 {
		return nil
	}

	tilesX, tilesY := TilesFor(width, height)
	numWords := (tilesX*tilesY + 63) / 64

	return &DirtyRegion{
		words:  make([]atomic.Uint64, numWords),
		tilesX: tilesX,
		tilesY: tilesY,
		bounds: image.Rect(0, 0, width, height),
	}
}

// Mark marks a single tile as dirty.
// This is a lock-free O(1) operation using atomic OR.
// Does nothing if coordinates are out of bounds.
func (d *DirtyRegion) Mark(tx, ty int) {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return
	}
	idx := ty*d.tilesX + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks every tile intersecting the pixel rectangle r.
// Parts of r outside the grid are ignored.
func (d *DirtyRegion) MarkRect(r image.Rectangle) {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return
	}

	tx1, ty1 := r.Min.X/TileWidth, r.Min.Y/TileHeight
	tx2, ty2 := (r.Max.X-1)/TileWidth, (r.Max.Y-1)/TileHeight

	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.Mark(tx, ty)
		}
	}
}

// MarkAll marks all tiles as dirty.
func (d *DirtyRegion) MarkAll() {
	totalTiles := d.tilesX * d.tilesY
	fullWords := totalTiles / 64
	remainder := totalTiles % 64

	for i := 0; i < fullWords; i++ {
		d.words[i].Store(^uint64(0))
	}
	if remainder > 0 {
		d.words[fullWords].Store((uint64(1) << remainder) - 1)
	}
}

// IsDirty returns true if the tile at (tx, ty) is marked as dirty.
// Returns false for out-of-bounds coordinates.
func (d *DirtyRegion) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// IsEmpty returns true if no tiles are marked as dirty.
func (d *DirtyRegion) IsEmpty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of tiles marked as dirty.
func (d *DirtyRegion) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// GetAndClear atomically retrieves all dirty tile coordinates and clears them.
// Tiles are returned in row-major order.
func (d *DirtyRegion) GetAndClear() [][2]int {
	var dirty [][2]int
	totalTiles := d.tilesX * d.tilesY

	for wordIdx := range d.words {
		// Atomically swap the word with 0 to get and clear
		word := d.words[wordIdx].Swap(0)

		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			tileIdx := wordIdx*64 + bitIdx
			if tileIdx >= totalTiles {
				break
			}
			dirty = append(dirty, [2]int{tileIdx % d.tilesX, tileIdx / d.tilesX})
			word &^= 1 << bitIdx
		}
	}

	return dirty
}

// TakeRects drains the bitmap and returns the pixel bounds of every dirty
// tile, clipped to the grid, in row-major order.
func (d *DirtyRegion) TakeRects() []image.Rectangle {
	tiles := d.GetAndClear()
	if len(tiles) == 0 {
		return nil
	}
	rects := make([]image.Rectangle, len(tiles))
	for i, t := range tiles {
		rects[i] = TileBounds(t[0], t[1]).Intersect(d.bounds)
	}
	return rects
}

// TilesX returns the number of tiles horizontally.
func (d *DirtyRegion) TilesX() int {
	return d.tilesX
}

// TilesY returns the number of tiles vertically.
func (d *DirtyRegion) TilesY() int {
	return d.tilesY
}
