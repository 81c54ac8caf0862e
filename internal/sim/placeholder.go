package sim

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

const (
	historyLen   = 120
	chartTop     = 5
	minChartRows = 3
	minChartCols = 24
)

// View selects how the placeholder draws its history.
type View int

const (
	ViewChart View = iota
	ViewDots
)

func (v View) String() string {
	if v == ViewDots {
		return "dots"
	}
	return "chart"
}

// Placeholder stands in for a visualization that has not been written. It
// draws its kind's name and a chart of how many keys it has been offered,
// sampled once per running tick.
type Placeholder struct {
	kind    mode.SimKind
	view    View
	offered int
	history []float64
}

func NewPlaceholder(k mode.SimKind) *Placeholder {
	return &Placeholder{kind: k, history: make([]float64, 0, historyLen)}
}

func (p *Placeholder) Kind() mode.SimKind { return p.kind }

// View returns the current view.
func (p *Placeholder) View() View { return p.view }

// History returns the sampled values, oldest first.
func (p *Placeholder) History() []float64 { return p.history }

func (p *Placeholder) HandleKey(k screen.Key) (Update, bool) {
	p.offered++
	if !k.Is('c') {
		return Update{}, false
	}
	if p.view == ViewChart {
		p.view = ViewDots
	} else {
		p.view = ViewChart
	}
	return Update{Notice: "view: " + p.view.String()}, true
}

func (p *Placeholder) Render(c Canvas, t Tick) {
	if t.Running() {
		p.history = append(p.history, float64(p.offered))
		if len(p.history) > historyLen {
			p.history = p.history[1:]
		}
	}

	state := "running"
	if !t.Running() {
		state = "paused"
	}
	c.Text(0, 1, p.kind.Label(), theme.VizAccent)
	c.Text(1, 1, p.kind.Blurb(), theme.TextMuted)
	n := c.Text(2, 1, fmt.Sprintf("tick %d  ", t.Count), theme.StatusValue)
	c.Text(2, 1+n, state, theme.StatusLabel)
	c.Text(3, 1, "not implemented yet; c switches the view", theme.TextMuted)

	size := c.Size()
	rows, cols := size.Rows-chartTop, size.Cols-2
	if rows < 1 || cols < 1 || len(p.history) == 0 {
		return
	}

	var lines []string
	if p.view == ViewChart && rows >= minChartRows+1 && cols >= minChartCols {
		lines = p.chart(rows, cols)
	} else {
		b := NewBraille(cols, rows)
		b.Trace(p.history)
		lines = b.Lines()
	}
	for i, line := range lines {
		if i >= rows {
			break
		}
		c.Text(chartTop+i, 1, line, theme.VizGraph)
	}
}

func (p *Placeholder) chart(rows, cols int) []string {
	data := p.history
	if len(data) == 1 {
		data = []float64{0, data[0]}
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(rows-2),
		asciigraph.Width(cols-10),
		asciigraph.Caption("keys offered"),
	)
	return strings.Split(graph, "\n")
}
