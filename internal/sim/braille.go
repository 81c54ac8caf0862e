package sim

// Braille cells hold a 2x4 dot matrix:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var dotMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Braille is a dot canvas of Cols x Rows cells, 2*Cols x 4*Rows dots.
type Braille struct {
	Cols, Rows int
	grid       [][]rune
}

func NewBraille(cols, rows int) *Braille {
	b := &Braille{Cols: cols, Rows: rows, grid: make([][]rune, rows)}
	for i := range b.grid {
		b.grid[i] = make([]rune, cols)
		for j := range b.grid[i] {
			b.grid[i][j] = brailleBlank
		}
	}
	return b
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.grid[row][col] |= dotMap[y%4][x%2]
}

// Line draws a line using Bresenham's algorithm
func (b *Braille) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Trace plots values left to right, scaled to the canvas height, with the
// newest value at the right edge.
func (b *Braille) Trace(values []float64) {
	w, h := b.Cols*2, b.Rows*4
	if w == 0 || h == 0 || len(values) == 0 {
		return
	}
	if len(values) > w {
		values = values[len(values)-w:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	y := func(v float64) int {
		return h - 1 - int((v-lo)/span*float64(h-1))
	}
	x0 := w - len(values)
	prev := y(values[0])
	for i, v := range values {
		cur := y(v)
		b.Line(x0+i-1, prev, x0+i, cur)
		prev = cur
	}
}

// Lines returns the canvas rows.
func (b *Braille) Lines() []string {
	out := make([]string, len(b.grid))
	for i, row := range b.grid {
		out[i] = string(row)
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
