package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

// ErrUnknownKind indicates no visualization is registered for a kind.
var ErrUnknownKind = errors.New("sim: unknown visualization kind")

// Tick is the loop state handed to a visualization on each render pass.
type Tick struct {
	// Count is the number of passes rendered while running.
	Count int
	Mode  mode.Mode
}

// Running reports whether the visualization is advancing.
func (t Tick) Running() bool {
	return t.Mode.Kind == mode.Visualizing
}

// Update is a visualization's response to a key.
type Update struct {
	// Notice is shown in the status panel.
	Notice string
}

// Canvas is the region of the main panel a visualization draws in.
type Canvas struct {
	r      screen.Renderer
	region screen.Region
}

// NewCanvas returns a canvas over rect.
func NewCanvas(r screen.Renderer, rect screen.Rect) Canvas {
	return Canvas{r: r, region: r.NewRegion(rect.Origin, rect.Size)}
}

// Size returns the drawable area.
func (c Canvas) Size() screen.Size {
	return c.region.Size
}

// Text writes text at row, col and returns the columns used.
func (c Canvas) Text(row, col int, s string, tok theme.Token) int {
	return c.r.WriteText(c.region, row, col, s, tok)
}

// Glyph writes one cell.
func (c Canvas) Glyph(row, col int, g rune, tok theme.Token) {
	c.r.WriteGlyph(c.region, row, col, g, tok)
}

// Clear erases the canvas.
func (c Canvas) Clear() {
	c.r.Erase(c.region)
}

// Visualization is the per-kind drawing behaviour plugged into the main
// panel.
type Visualization interface {
	Kind() mode.SimKind
	Render(c Canvas, t Tick)
	// HandleKey is offered keys the dashboard itself does not use while
	// the visualization is running. It reports whether it consumed k.
	HandleKey(k screen.Key) (Update, bool)
}

// Factory creates a fresh visualization.
type Factory func() Visualization

// Registry maps kinds to factories.
type Registry struct {
	factories map[mode.SimKind]Factory
}

// NewRegistry returns a registry holding the placeholder visualization for
// every kind.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[mode.SimKind]Factory)}
	for _, k := range mode.SimKinds() {
		k := k
		r.factories[k] = func() Visualization { return NewPlaceholder(k) }
	}
	return r
}

// Register installs f for k, replacing any previous factory.
func (r *Registry) Register(k mode.SimKind, f Factory) {
	r.factories[k] = f
}

// Get creates the visualization for k.
func (r *Registry) Get(k mode.SimKind) (Visualization, error) {
	fn, ok := r.factories[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return fn(), nil
}

// Kinds lists registered kinds in menu order.
func (r *Registry) Kinds() []mode.SimKind {
	kinds := make([]mode.SimKind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
