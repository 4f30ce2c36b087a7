// Package grid splits a frame into a rows x cols matrix of pixel rectangles.
//
// Cells are floor-sized; the last row and the last column absorb the
// remainder so the union of all cells covers the frame exactly. When the
// grid is finer than the frame, non-final cells come out empty and callers
// are expected to handle zero-area rectangles.
package grid

// Rect is a half-open pixel rectangle [Y1,Y2) x [X1,X2) in frame coordinates.
type Rect struct {
	Y1, Y2 int
	X1, X2 int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.Y2 <= r.Y1 || r.X2 <= r.X1 }

// Area returns the number of pixels inside r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.Y2 - r.Y1) * (r.X2 - r.X1)
}

// Partition returns the cell rectangles for a height x width frame split
// into rows x cols. rows and cols must be positive; the config layer
// rejects anything else before a run starts.
func Partition(height, width, rows, cols int) [][]Rect {
	cellH := height / rows
	cellW := width / cols

	cells := make([][]Rect, rows)
	for i := 0; i < rows; i++ {
		y1, y2 := bounds(i, rows, cellH, height)
		row := make([]Rect, cols)
		for j := 0; j < cols; j++ {
			x1, x2 := bounds(j, cols, cellW, width)
			row[j] = Rect{Y1: y1, Y2: y2, X1: x1, X2: x2}
		}
		cells[i] = row
	}
	return cells
}

// bounds returns the [start, end) span of segment i out of n along an axis
// of length total with nominal segment size step.
func bounds(i, n, step, total int) (int, int) {
	start := i * step
	if i == n-1 {
		return start, total
	}
	return start, start + step
}
