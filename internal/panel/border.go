package panel

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/learnscape/internal/theme"
)

// Border describes a panel frame.
type Border struct {
	Visible bool
	Token   theme.Token
	Glyphs  lipgloss.Border
}

// Glyph sets by name. Rounded is the default.
var borderStyles = map[string]lipgloss.Border{
	"rounded": lipgloss.RoundedBorder(),
	"normal":  lipgloss.NormalBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
}

// BorderStyle returns the glyph set registered under name.
func BorderStyle(name string) (lipgloss.Border, error) {
	if name == "" {
		return lipgloss.RoundedBorder(), nil
	}
	b, ok := borderStyles[name]
	if !ok {
		return lipgloss.Border{}, fmt.Errorf("unknown border style: %s", name)
	}
	return b, nil
}

// BorderStyleNames lists the valid style names.
func BorderStyleNames() []string {
	return []string{"rounded", "normal", "thick", "double"}
}

// Framed returns a visible border drawn with glyphs in tok's color.
func Framed(glyphs lipgloss.Border, tok theme.Token) Border {
	return Border{Visible: true, Token: tok, Glyphs: glyphs}
}

type glyphSet struct {
	top, bottom, left, right                   rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

func (b Border) glyphs() glyphSet {
	g := b.Glyphs
	if g.Top == "" {
		g = lipgloss.RoundedBorder()
	}
	return glyphSet{
		top:         first(g.Top, '─'),
		bottom:      first(g.Bottom, '─'),
		left:        first(g.Left, '│'),
		right:       first(g.Right, '│'),
		topLeft:     first(g.TopLeft, '╭'),
		topRight:    first(g.TopRight, '╮'),
		bottomLeft:  first(g.BottomLeft, '╰'),
		bottomRight: first(g.BottomRight, '╯'),
	}
}

func first(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
