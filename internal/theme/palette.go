package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// ErrPaletteInitFailed reports that the palette could not be applied as
// configured. It is never fatal: the returned palette is still usable.
var ErrPaletteInitFailed = errors.New("theme: palette init failed")

// Token is a semantic color name.
type Token string

const (
	BorderDefault Token = "border-default"
	BorderAccent  Token = "border-accent"
	TitleBanner   Token = "title-banner"
	MenuKey       Token = "menu-key"
	MenuLabel     Token = "menu-label"
	MenuHighlight Token = "menu-highlight"
	StatusLabel   Token = "status-label"
	StatusValue   Token = "status-value"
	TextDefault   Token = "text-default"
	TextMuted     Token = "text-muted"
	HelpText      Token = "help-text"
	Warning       Token = "warning"
	VizAccent     Token = "viz-accent"
	VizGraph      Token = "viz-graph"
)

var bindings = map[Token]string{
	BorderDefault: Purple,
	BorderAccent:  LightBlue,
	TitleBanner:   Yellow,
	MenuKey:       Orange,
	MenuLabel:     DimWhite,
	MenuHighlight: Cyan,
	StatusLabel:   DarkGrey,
	StatusValue:   LightGrn,
	TextDefault:   White,
	TextMuted:     DarkGrey,
	HelpText:      DimWhite,
	Warning:       LightRed,
	VizAccent:     Magenta,
	VizGraph:      Green,
}

// Pair is one entry of the terminal color table.
type Pair struct {
	ID    int
	Name  string
	Color lipgloss.Color
	fg    tcell.Color
}

// Options selects the scheme and describes the terminal.
type Options struct {
	Scheme string
	// Colors is the number of colors the terminal reports. Anything below
	// 256 means the color table cannot be remapped.
	Colors int
	// Overrides replaces base colors by name with hex values.
	Overrides map[string]string
}

// Palette binds tokens to color pairs. It is immutable once built.
type Palette struct {
	scheme  string
	pairs   [MaxPairs]Pair
	tokens  map[Token]int
	limited bool
}

// New builds a palette. The palette is always usable; a non-nil error wraps
// ErrPaletteInitFailed and describes what fell back to defaults.
func New(opts Options) (*Palette, error) {
	var problems []string

	scheme, ok := GetScheme(opts.Scheme)
	if !ok && opts.Scheme != "" {
		problems = append(problems, fmt.Sprintf("unknown scheme %q", opts.Scheme))
	}

	p := &Palette{
		scheme:  scheme.Name,
		tokens:  make(map[Token]int, len(bindings)),
		limited: opts.Colors < 256,
	}
	if p.limited {
		problems = append(problems, fmt.Sprintf("terminal reports %d colors", opts.Colors))
	}

	for i, name := range baseNames {
		c := scheme.Colors[i]
		if hex, ok := opts.Overrides[name]; ok {
			if tcell.GetColor(hex) == tcell.ColorDefault {
				problems = append(problems, fmt.Sprintf("bad color %q for %s", hex, name))
			} else {
				c = lipgloss.Color(hex)
			}
		}
		fg := basic[i]
		if !p.limited {
			fg = tcell.GetColor(string(c))
		}
		p.pairs[i] = Pair{ID: i + 1, Name: name, Color: c, fg: fg}
	}
	for name := range opts.Overrides {
		if _, ok := baseIndex(name); !ok {
			problems = append(problems, fmt.Sprintf("unknown color %q", name))
		}
	}

	for tok, name := range bindings {
		idx, _ := baseIndex(name)
		p.tokens[tok] = idx + 1
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return p, fmt.Errorf("%w: %s", ErrPaletteInitFailed, strings.Join(problems, "; "))
	}
	return p, nil
}

var (
	once    sync.Once
	shared  *Palette
	initErr error
)

// Init builds the process-wide palette. Only the first call has any effect;
// later calls return the palette built by the first.
func Init(opts Options) (*Palette, error) {
	once.Do(func() {
		shared, initErr = New(opts)
	})
	return shared, initErr
}

// Scheme returns the name of the scheme in use.
func (p *Palette) Scheme() string { return p.scheme }

// Limited reports whether the palette fell back to 8 colors.
func (p *Palette) Limited() bool { return p.limited }

// Pair returns the pair id bound to tok, or 0 for unknown tokens.
func (p *Palette) Pair(tok Token) int {
	return p.tokens[tok]
}

// Pairs returns the color table.
func (p *Palette) Pairs() []Pair {
	return append([]Pair(nil), p.pairs[:]...)
}

// Tokens returns every bound token, sorted.
func (p *Palette) Tokens() []Token {
	toks := make([]Token, 0, len(p.tokens))
	for t := range p.tokens {
		toks = append(toks, t)
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	return toks
}

// Style returns the terminal style for tok. Backgrounds stay at the
// terminal default.
func (p *Palette) Style(tok Token) tcell.Style {
	if p == nil {
		return tcell.StyleDefault
	}
	id := p.tokens[tok]
	if id == 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(p.pairs[id-1].fg)
}

// Lipgloss returns a lipgloss style for tok, for output outside the
// dashboard.
func (p *Palette) Lipgloss(tok Token) lipgloss.Style {
	id := p.tokens[tok]
	if id == 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(p.pairs[id-1].Color)
}
