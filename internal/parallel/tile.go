// Package parallel provides tile-based parallel pass infrastructure for the
// fractal grid.
//
// A pass over a rectangular region is split into 64x64 pixel tiles that are
// evaluated independently on an ephemeral worker pool. Key features:
//
//   - 64x64 tiles: a full tile of int32 counts is 16KB, fitting L1 cache
//   - Work-stealing WorkerPool so slow tiles inside the set do not stall a pass
//   - Lock-free dirty tile tracking for damage reporting to the host
//
// Thread safety: Split and the tile helpers are pure. WorkerPool and
// DirtyRegion are safe for concurrent use.
package parallel

import "image"

// Tile size constants optimized for cache efficiency and work distribution.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the total number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight
)

// Split divides r into tiles of TileWidth × TileHeight aligned to the grid
// origin, so a tile never straddles two cells of the dirty bitmap. Tiles on
// the edges of r are clipped to r. The result is in row-major order.
// An empty r yields no tiles.
func Split(r image.Rectangle) []image.Rectangle {
	if r.Empty() {
		return nil
	}

	tx0, ty0 := floorDiv(r.Min.X, TileWidth), floorDiv(r.Min.Y, TileHeight)
	tx1, ty1 := floorDiv(r.Max.X-1, TileWidth), floorDiv(r.Max.Y-1, TileHeight)

	tiles := make([]image.Rectangle, 0, (tx1-tx0+1)*(ty1-ty0+1))
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			tile := TileBounds(tx, ty).Intersect(r)
			if !tile.Empty() {
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles
}

// TileBounds returns the full pixel bounds of tile (tx, ty).
func TileBounds(tx, ty int) image.Rectangle {
	return image.Rect(
		tx*TileWidth,
		ty*TileHeight,
		(tx+1)*TileWidth,
		(ty+1)*TileHeight,
	)
}

// TilesFor returns how many tiles cover a width × height grid in each direction.
func TilesFor(width, height int) (tilesX, tilesY int) {
	return (width + TileWidth - 1) / TileWidth, (height + TileHeight - 1) / TileHeight
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
