package screen

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/san-kum/learnscape/internal/theme"
)

// Region is a rectangle of the screen that writes are clipped to.
// Coordinates passed to the write calls are relative to its origin.
type Region struct {
	Rect
}

// Renderer is the drawing surface the dashboard needs.
type Renderer interface {
	Size() Size
	NewRegion(origin Point, size Size) Region
	WriteGlyph(r Region, row, col int, g rune, tok theme.Token)
	// WriteText writes text and returns the number of columns used.
	WriteText(r Region, row, col int, text string, tok theme.Token) int
	Erase(r Region)
	// Clear blanks the whole surface.
	Clear()
	Present()
	// ReadKey blocks until a key or resize arrives.
	ReadKey() (Key, error)
}

// Terminal is a Renderer backed by a tcell screen.
type Terminal struct {
	scr     tcell.Screen
	palette *theme.Palette
	closed  bool
}

// Open initializes the real terminal. Close must be called on every exit
// path to restore cursor and echo state.
func Open() (*Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	return NewTerminal(scr), nil
}

// NewTerminal wraps an initialized tcell screen.
func NewTerminal(scr tcell.Screen) *Terminal {
	scr.HideCursor()
	scr.SetStyle(tcell.StyleDefault)
	scr.Clear()
	return &Terminal{scr: scr}
}

// SetPalette sets the palette tokens are resolved against.
func (t *Terminal) SetPalette(p *theme.Palette) {
	t.palette = p
}

// Colors returns the number of colors the terminal supports.
func (t *Terminal) Colors() int {
	return t.scr.Colors()
}

// Close releases the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.scr.Fini()
}

func (t *Terminal) Size() Size {
	w, h := t.scr.Size()
	return Size{Rows: h, Cols: w}
}

func (t *Terminal) NewRegion(origin Point, size Size) Region {
	return Region{Rect{Origin: origin, Size: size}}
}

func (t *Terminal) WriteGlyph(r Region, row, col int, g rune, tok theme.Token) {
	if row < 0 || col < 0 || row >= r.Size.Rows || col >= r.Size.Cols {
		return
	}
	t.scr.SetContent(r.Origin.Col+col, r.Origin.Row+row, g, nil, t.palette.Style(tok))
}

func (t *Terminal) WriteText(r Region, row, col int, text string, tok theme.Token) int {
	if row < 0 || row >= r.Size.Rows {
		return 0
	}
	style := t.palette.Style(tok)
	start := col
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if col+w > r.Size.Cols {
			break
		}
		if col >= 0 {
			t.scr.SetContent(r.Origin.Col+col, r.Origin.Row+row, c, nil, style)
		}
		col += w
	}
	return col - start
}

func (t *Terminal) Erase(r Region) {
	for row := 0; row < r.Size.Rows; row++ {
		for col := 0; col < r.Size.Cols; col++ {
			t.scr.SetContent(r.Origin.Col+col, r.Origin.Row+row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (t *Terminal) Present() {
	t.scr.Show()
}

func (t *Terminal) ReadKey() (Key, error) {
	for {
		switch ev := t.scr.PollEvent().(type) {
		case nil:
			return Key{}, io.EOF
		case *tcell.EventKey:
			return keyFromEvent(ev), nil
		case *tcell.EventResize:
			t.scr.Sync()
			return Resize(), nil
		}
	}
}

func (t *Terminal) Clear() {
	t.scr.Clear()
}

// Dump returns the screen contents as plain text, one line per row with
// trailing blanks trimmed.
func (t *Terminal) Dump() string {
	w, h := t.scr.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			c, _, _, width := t.scr.GetContent(x, y)
			if width == 0 {
				continue
			}
			if c == 0 {
				c = ' '
			}
			line.WriteRune(c)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
