package layout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/panel"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

// ErrTerminalTooSmall indicates a terminal with no usable cell at all.
var ErrTerminalTooSmall = errors.New("layout: terminal too small")

// Panel geometry.
const (
	ControlHeight = 6
	ControlWidth  = 15
	StatusHeight  = 4
	Gap           = 1

	TitleHeight = 7
	TitleWidth  = 71

	MenuHeight = 25
	MenuWidth  = 52
	MenuTop    = TitleHeight + 1

	OptionsWidthMenu = 40
	OptionsWidth     = 30

	HelpHeight = 15
	HelpWidth  = 48
)

// MinMenuSize is the smallest terminal that fits every main menu panel.
var MinMenuSize = screen.Size{
	Rows: MenuTop + MenuHeight + ControlHeight,
	Cols: TitleWidth + OptionsWidthMenu,
}

// Options configures the chrome. The zero value gives rounded borders and
// no banner.
type Options struct {
	Glyphs     lipgloss.Border
	ShowBanner bool
}

// DefaultOptions matches the stock dashboard.
func DefaultOptions() Options {
	return Options{Glyphs: lipgloss.RoundedBorder(), ShowBanner: true}
}

type slot struct {
	id      panel.ID
	overlay bool
	show    func(m mode.Mode) bool
	rect    func(m mode.Mode, s screen.Size) screen.Rect
	fill    func(p *panel.Panel, m mode.Mode, o Options)
}

func always(mode.Mode) bool { return true }

func onMenu(m mode.Mode) bool { return m.Base().Kind == mode.MainMenu }

func at(row, col, rows, cols int) screen.Rect {
	return screen.Rect{
		Origin: screen.Point{Row: row, Col: col},
		Size:   screen.Size{Rows: rows, Cols: cols},
	}
}

func optionsWidth(m mode.Mode) int {
	if onMenu(m) {
		return OptionsWidthMenu
	}
	return OptionsWidth
}

// table lists panels in creation (and z) order.
var table = []slot{
	{
		id:   panel.Control,
		show: always,
		rect: func(_ mode.Mode, s screen.Size) screen.Rect {
			return at(s.Rows-ControlHeight, 0, ControlHeight, ControlWidth)
		},
		fill: func(p *panel.Panel, m mode.Mode, _ Options) {
			p.Title = "keys"
			p.SetContent(controlContent(m))
		},
	},
	{
		id:   panel.Status,
		show: always,
		rect: func(_ mode.Mode, s screen.Size) screen.Rect {
			col := ControlWidth + Gap
			return at(s.Rows-StatusHeight, col, StatusHeight, s.Cols-col-Gap)
		},
		fill: func(p *panel.Panel, m mode.Mode, _ Options) {
			p.Title = "status"
			p.SetContent(StatusLines(m, "", ""))
		},
	},
	{
		id:   panel.Title,
		show: onMenu,
		rect: func(_ mode.Mode, _ screen.Size) screen.Rect {
			return at(0, 0, TitleHeight, TitleWidth)
		},
		fill: func(p *panel.Panel, _ mode.Mode, o Options) {
			if o.ShowBanner {
				p.SetBanner(panel.Banner{Row: 1, Col: 1, Lines: Banner, Token: theme.TitleBanner})
				return
			}
			p.Centered = true
			p.SetContent([]panel.Line{{}, {}, panel.Text("L E A R N S C A P E", theme.TitleBanner)})
		},
	},
	{
		id:   panel.Menu,
		show: onMenu,
		rect: func(m mode.Mode, s screen.Size) screen.Rect {
			col := (s.Cols - optionsWidth(m) - MenuWidth) / 2
			if col < 0 {
				col = 0
			}
			return at(MenuTop, col, MenuHeight, MenuWidth)
		},
		fill: func(p *panel.Panel, _ mode.Mode, _ Options) {
			p.Title = "menu"
			p.Centered = true
			p.SetContent(menuContent())
		},
	},
	{
		id:   panel.Options,
		show: always,
		rect: func(m mode.Mode, s screen.Size) screen.Rect {
			w := optionsWidth(m)
			return at(0, s.Cols-w, s.Rows-StatusHeight, w)
		},
		fill: func(p *panel.Panel, m mode.Mode, _ Options) {
			p.Title = "options"
			p.SetContent(optionsContent(m))
		},
	},
	{
		id:   panel.Main,
		show: func(m mode.Mode) bool { return m.ShowsSim() },
		rect: func(m mode.Mode, s screen.Size) screen.Rect {
			return at(0, 0, s.Rows-ControlHeight, s.Cols-optionsWidth(m)-Gap)
		},
		fill: func(p *panel.Panel, m mode.Mode, _ Options) {
			p.Title = mainTitle(m)
		},
	},
	{
		id:      panel.Help,
		overlay: true,
		show:    func(m mode.Mode) bool { return m.Kind == mode.HelpOverlay },
		rect: func(_ mode.Mode, s screen.Size) screen.Rect {
			rows, cols := min(HelpHeight, s.Rows), min(HelpWidth, s.Cols)
			return at((s.Rows-rows)/2, (s.Cols-cols)/2, rows, cols)
		},
		fill: func(p *panel.Panel, m mode.Mode, _ Options) {
			p.Title = "help"
			p.Border.Token = theme.BorderAccent
			p.Centered = true
			p.SetContent(helpContent(m))
		},
	},
}

// Omission records a panel left out of a layout and why.
type Omission struct {
	ID  panel.ID
	Err error
}

// Plan is the outcome of one layout pass.
type Plan struct {
	Panels  []*panel.Panel
	Omitted []Omission
}

// Find returns the panel with the given id, or nil.
func (p Plan) Find(id panel.ID) *panel.Panel {
	for _, pn := range p.Panels {
		if pn.ID == id {
			return pn
		}
	}
	return nil
}

// Compute lays out the panels for m on a terminal of the given size. It is
// a pure function of its arguments and o. Panels that do not fit, or that
// would overlap an earlier panel, are omitted; only an empty terminal is an
// error.
func Compute(m mode.Mode, size screen.Size, o Options) (Plan, error) {
	if size.Empty() {
		return Plan{}, fmt.Errorf("%w: %s", ErrTerminalTooSmall, size)
	}

	var plan Plan
	for _, sl := range table {
		if !sl.show(m) {
			continue
		}
		r := sl.rect(m, size)
		border := panel.Framed(o.Glyphs, theme.BorderDefault)

		p, err := panel.New(sl.id, r, border, size)
		if err == nil && !sl.overlay {
			for _, other := range plan.Panels {
				if other.Rect.Overlaps(r) {
					err = &panel.GeometryError{ID: sl.id, Rect: r, Term: size, Reason: "overlaps " + other.ID.String()}
					break
				}
			}
		}
		if err != nil {
			plan.Omitted = append(plan.Omitted, Omission{ID: sl.id, Err: err})
			continue
		}
		sl.fill(p, m, o)
		plan.Panels = append(plan.Panels, p)
	}
	return plan, nil
}

// Rebuild returns the panels for m with the default chrome.
func Rebuild(m mode.Mode, size screen.Size) ([]*panel.Panel, error) {
	plan, err := Compute(m, size, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return plan.Panels, nil
}
