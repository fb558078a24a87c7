package parallel

import (
	"image"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		r         image.Rectangle
		wantTiles int
	}{
		{"empty", image.Rectangle{}, 0},
		{"single tile", image.Rect(0, 0, 64, 64), 1},
		{"sub tile", image.Rect(3, 5, 20, 30), 1},
		{"800x600", image.Rect(0, 0, 800, 600), 13 * 10},
		{"top strip", image.Rect(0, 0, 800, 10), 13},
		{"right strip", image.Rect(790, 0, 800, 600), 10},
		{"straddles tile edge", image.Rect(60, 60, 70, 70), 4},
		{"negative origin", image.Rect(-10, -10, 10, 10), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := Split(tt.r)
			if len(tiles) != tt.wantTiles {
				t.Fatalf("Split(%v) = %d tiles, want %d", tt.r, len(tiles), tt.wantTiles)
			}

			// Tiles must cover r exactly once.
			area := 0
			for i, a := range tiles {
				if !a.In(tt.r) {
					t.Errorf("tile %v not inside %v", a, tt.r)
				}
				if a.Dx() > TileWidth || a.Dy() > TileHeight {
					t.Errorf("tile %v larger than %dx%d", a, TileWidth, TileHeight)
				}
				for _, b := range tiles[i+1:] {
					if a.Overlaps(b) {
						t.Errorf("tiles %v and %v overlap", a, b)
					}
				}
				area += a.Dx() * a.Dy()
			}
			if area != tt.r.Dx()*tt.r.Dy() {
				t.Errorf("tiles cover %d pixels, want %d", area, tt.r.Dx()*tt.r.Dy())
			}
		})
	}
}

func TestSplit_GridAligned(t *testing.T) {
	for _, tile := range Split(image.Rect(30, 30, 300, 200)) {
		// A tile never crosses a grid line, so it lies in exactly one bitmap cell.
		if tile.Min.X/TileWidth != (tile.Max.X-1)/TileWidth ||
			tile.Min.Y/TileHeight != (tile.Max.Y-1)/TileHeight {
			t.Errorf("tile %v crosses a grid line", tile)
		}
	}
}

func TestTileBounds(t *testing.T) {
	if got := TileBounds(2, 1); got != image.Rect(128, 64, 192, 128) {
		t.Errorf("TileBounds(2, 1) = %v", got)
	}
}

func TestTilesFor(t *testing.T) {
	tests := []struct {
		w, h   int
		tx, ty int
	}{
		{64, 64, 1, 1},
		{65, 64, 2, 1},
		{800, 600, 13, 10},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		tx, ty := TilesFor(tt.w, tt.h)
		if tx != tt.tx || ty != tt.ty {
			t.Errorf("TilesFor(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, tx, ty, tt.tx, tt.ty)
		}
	}
}
