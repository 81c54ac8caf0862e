package screen

import "fmt"

// Size is a height and width in cells.
type Size struct {
	Rows, Cols int
}

// Empty reports whether nothing fits in s.
func (s Size) Empty() bool {
	return s.Rows < 1 || s.Cols < 1
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Point is a cell position, zero-based from the top-left corner.
type Point struct {
	Row, Col int
}

// Rect is a rectangle of cells.
type Rect struct {
	Origin Point
	Size   Size
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int { return r.Origin.Row + r.Size.Rows }

// Right returns the first column right of r.
func (r Rect) Right() int { return r.Origin.Col + r.Size.Cols }

// Within reports whether r lies entirely inside a surface of size s.
func (r Rect) Within(s Size) bool {
	return r.Origin.Row >= 0 && r.Origin.Col >= 0 &&
		r.Bottom() <= s.Rows && r.Right() <= s.Cols
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Size.Empty() || o.Size.Empty() {
		return false
	}
	return r.Origin.Row < o.Bottom() && o.Origin.Row < r.Bottom() &&
		r.Origin.Col < o.Right() && o.Origin.Col < r.Right()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		Origin: Point{Row: r.Origin.Row + n, Col: r.Origin.Col + n},
		Size:   Size{Rows: r.Size.Rows - 2*n, Cols: r.Size.Cols - 2*n},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s@%d,%d", r.Size, r.Origin.Row, r.Origin.Col)
}
