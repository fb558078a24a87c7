package grid

import "image"

// Shift moves the contents of both grids by (dx, dy) pixels: the cell at
// (x, y) ends up at (x+dx, y+dy). Cells shifted past the edge are dropped.
//
// The moves use copy, which is defined for overlapping slices, so a cell is
// never overwritten before it is read regardless of direction. Vertical
// shifts move the whole overlapping block at once; horizontal shifts move
// each row.
//
// Shift returns the vacated strips, which still hold stale contents and must
// be recomputed and recolored by the caller. When the shift is as large as
// the grid nothing is moved and the whole grid is returned.
func (b *Buffer[F]) Shift(dx, dy int) []image.Rectangle {
	if dx == 0 && dy == 0 {
		return nil
	}
	if abs(dx) >= b.width || abs(dy) >= b.height {
		return []image.Rectangle{b.Bounds()}
	}

	var vacated []image.Rectangle
	if dy != 0 {
		shiftRows(b.iters, b.width, dy)
		shiftRows(b.pix, b.width*BytesPerPixel, dy)
		if dy > 0 {
			vacated = append(vacated, image.Rect(0, 0, b.width, dy))
		} else {
			vacated = append(vacated, image.Rect(0, b.height+dy, b.width, b.height))
		}
	}
	if dx != 0 {
		shiftColumns(b.iters, b.width, dx)
		shiftColumns(b.pix, b.width*BytesPerPixel, dx*BytesPerPixel)
		if dx > 0 {
			vacated = append(vacated, image.Rect(0, 0, dx, b.height))
		} else {
			vacated = append(vacated, image.Rect(b.width+dx, 0, b.width, b.height))
		}
	}

	b.damage.MarkAll()
	return vacated
}

// shiftRows moves whole rows of a grid with the given row stride by dy rows.
func shiftRows[T any](cells []T, stride, dy int) {
	n := abs(dy) * stride
	if dy > 0 {
		copy(cells[n:], cells[:len(cells)-n])
	} else {
		copy(cells, cells[n:])
	}
}

// shiftColumns moves every row of a grid with the given row stride by d cells.
func shiftColumns[T any](cells []T, stride, d int) {
	n := abs(d)
	for start := 0; start < len(cells); start += stride {
		row := cells[start : start+stride]
		if d > 0 {
			copy(row[n:], row[:stride-n])
		} else {
			copy(row, row[n:])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
