package panel

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

// ErrInvalidGeometry indicates a panel that does not fit the terminal or
// is too small for its border.
var ErrInvalidGeometry = errors.New("panel: invalid geometry")

// GeometryError wraps ErrInvalidGeometry with the rejected rectangle.
type GeometryError struct {
	ID     ID
	Rect   screen.Rect
	Term   screen.Size
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("panel %s %s in %s: %s", e.ID, e.Rect, e.Term, e.Reason)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// ID names a panel.
type ID int

const (
	Control ID = iota
	Status
	Title
	Menu
	Options
	Main
	Help
)

var idNames = [...]string{"control", "status", "title", "menu", "options", "main", "help"}

func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("panel(%d)", int(id))
	}
	return idNames[id]
}

// Span is a run of text in one color.
type Span struct {
	Text  string
	Token theme.Token
}

// Line is one row of panel content.
type Line []Span

// Text returns a single-span line.
func Text(s string, tok theme.Token) Line {
	return Line{{Text: s, Token: tok}}
}

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += lipgloss.Width(s.Text)
	}
	return w
}

// Banner is fixed multi-line art drawn over the content.
type Banner struct {
	Row, Col int
	Lines    []string
	Token    theme.Token
}

// Panel is a bordered rectangle of the screen with styled content.
type Panel struct {
	ID       ID
	Rect     screen.Rect
	Border   Border
	Title    string
	Centered bool

	lines  []Line
	banner *Banner
}

// New validates the geometry against the terminal size and returns an
// empty panel.
func New(id ID, rect screen.Rect, border Border, term screen.Size) (*Panel, error) {
	fail := func(reason string) (*Panel, error) {
		return nil, &GeometryError{ID: id, Rect: rect, Term: term, Reason: reason}
	}
	switch {
	case rect.Size.Rows < 1 || rect.Size.Cols < 1:
		return fail("empty size")
	case border.Visible && (rect.Size.Rows < 3 || rect.Size.Cols < 3):
		return fail("too small for border")
	case !rect.Within(term):
		return fail("outside terminal")
	}
	return &Panel{ID: id, Rect: rect, Border: border}, nil
}

// SetContent replaces the body. Nothing is drawn until Render.
func (p *Panel) SetContent(lines []Line) {
	p.lines = append([]Line(nil), lines...)
}

// Content returns the body lines.
func (p *Panel) Content() []Line {
	return p.lines
}

// SetBanner sets the overlay drawn after the content.
func (p *Panel) SetBanner(b Banner) {
	p.banner = &b
}

// Interior returns the area inside the border, relative to the screen.
func (p *Panel) Interior() screen.Rect {
	if p.Border.Visible {
		return p.Rect.Inset(1)
	}
	return p.Rect
}

// Render draws border, content and banner.
func (p *Panel) Render(r screen.Renderer) {
	reg := r.NewRegion(p.Rect.Origin, p.Rect.Size)
	r.Erase(reg)
	if p.Border.Visible {
		p.drawBorder(r, reg)
	}

	inset := 0
	if p.Border.Visible {
		inset = 1
	}
	inner := p.Interior().Size

	for i, line := range p.lines {
		if i >= inner.Rows {
			break
		}
		col := 0
		if p.Centered {
			if pad := (inner.Cols - line.Width()) / 2; pad > 0 {
				col = pad
			}
		}
		for _, span := range line {
			room := inner.Cols - col
			if room <= 0 {
				break
			}
			col += r.WriteText(reg, inset+i, inset+col, runewidth.Truncate(span.Text, room, ""), span.Token)
		}
	}

	if b := p.banner; b != nil {
		for i, text := range b.Lines {
			row := b.Row + i
			if row < inset || row >= inset+inner.Rows {
				continue
			}
			room := inset + inner.Cols - b.Col
			if room <= 0 {
				break
			}
			r.WriteText(reg, row, b.Col, runewidth.Truncate(text, room, ""), b.Token)
		}
	}
}

func (p *Panel) drawBorder(r screen.Renderer, reg screen.Region) {
	g := p.Border.glyphs()
	tok := p.Border.Token
	h, w := p.Rect.Size.Rows-1, p.Rect.Size.Cols-1

	for col := 1; col < w; col++ {
		r.WriteGlyph(reg, 0, col, g.top, tok)
		r.WriteGlyph(reg, h, col, g.bottom, tok)
	}
	for row := 1; row < h; row++ {
		r.WriteGlyph(reg, row, 0, g.left, tok)
		r.WriteGlyph(reg, row, w, g.right, tok)
	}
	r.WriteGlyph(reg, 0, 0, g.topLeft, tok)
	r.WriteGlyph(reg, 0, w, g.topRight, tok)
	r.WriteGlyph(reg, h, 0, g.bottomLeft, tok)
	r.WriteGlyph(reg, h, w, g.bottomRight, tok)

	if p.Title != "" && w > 4 {
		title := runewidth.Truncate(" "+p.Title+" ", w-3, "")
		r.WriteText(reg, 0, 2, title, tok)
	}
}
