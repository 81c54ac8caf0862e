// Package app runs the dashboard: it reads a key, moves the mode state
// machine, rebuilds or refreshes the panels and renders them, until the
// user quits.
package app

import (
	"errors"
	"fmt"

	"github.com/san-kum/learnscape/internal/layout"
	"github.com/san-kum/learnscape/internal/logging"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/panel"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/sim"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitTooSmall = 2
)

// Options wires the dashboard. Zero fields get defaults.
type Options struct {
	Layout   layout.Options
	Registry *sim.Registry
	Logger   *logging.Logger
}

// App is one dashboard session. It is not safe for concurrent use; the
// loop runs on a single goroutine and blocks only in ReadKey.
type App struct {
	r       screen.Renderer
	layout  *layout.Manager
	reg     *sim.Registry
	log     *logging.Logger
	mode    mode.Mode
	lastKey string
	notice  string
	viz     sim.Visualization
	tick    int
	visited []mode.Mode
}

// New returns a session over r, starting in the main menu.
func New(r screen.Renderer, opts Options) *App {
	if opts.Layout.Glyphs.TopLeft == "" {
		opts.Layout.Glyphs = layout.DefaultOptions().Glyphs
	}
	if opts.Registry == nil {
		opts.Registry = sim.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &App{
		r:       r,
		layout:  layout.NewManager(opts.Layout),
		reg:     opts.Registry,
		log:     opts.Logger,
		mode:    mode.Menu(),
		visited: []mode.Mode{mode.Menu()},
	}
}

// Mode returns the current mode.
func (a *App) Mode() mode.Mode { return a.mode }

// Visited returns every mode the session has been in, in order, starting
// with the main menu.
func (a *App) Visited() []mode.Mode {
	return append([]mode.Mode(nil), a.visited...)
}

// Notice returns the message shown in the status panel, if any.
func (a *App) Notice() string { return a.notice }

// Run draws the dashboard and processes keys until the user quits. It
// returns the process exit code. The caller owns the renderer and must
// close it, even on error.
func (a *App) Run() (int, error) {
	a.log.Info("session started", "mode", a.mode, "size", a.r.Size())
	if err := a.rebuild(); err != nil {
		return a.fail(err)
	}
	a.render()

	for {
		k, err := a.r.ReadKey()
		if err != nil {
			return a.fail(fmt.Errorf("read key: %w", err))
		}
		quit, err := a.Handle(k)
		if err != nil {
			return a.fail(err)
		}
		if quit {
			return ExitOK, nil
		}
	}
}

// Handle applies one key: it moves the state machine, updates the panels
// and renders. It reports whether the session should end.
func (a *App) Handle(k screen.Key) (bool, error) {
	a.lastKey = k.String()
	a.notice = ""
	a.log.Debug("key pressed", "key", k, "mode", a.mode)

	next, eff := mode.Transition(a.mode, k)
	if eff == mode.EffectInvalid && a.mode.Kind == mode.Visualizing && a.viz != nil {
		if upd, ok := a.viz.HandleKey(k); ok {
			a.notice = upd.Notice
			eff = mode.EffectRefresh
		}
	}

	switch eff {
	case mode.EffectQuit:
		a.log.Info("Quitting...")
		return true, nil
	case mode.EffectInvalid:
		a.notice = "invalid key: " + k.String()
		a.log.Warn("invalid key", "key", k, "mode", a.mode, "err", mode.ErrUnrecognizedKey)
	case mode.EffectReserved:
		a.log.Debug("reserved key", "key", k)
	case mode.EffectIgnore:
		a.log.Debug("key ignored", "key", k, "mode", a.mode)
	}

	if eff == mode.EffectRebuild {
		a.setMode(next)
		if err := a.rebuild(); err != nil {
			return false, err
		}
	} else {
		a.refreshStatus()
	}
	a.advance()
	a.render()
	return false, nil
}

// Show switches straight to m and renders it. It is used for snapshots.
func (a *App) Show(m mode.Mode) error {
	a.setMode(m)
	if err := a.rebuild(); err != nil {
		return err
	}
	a.advance()
	a.render()
	return nil
}

func (a *App) setMode(next mode.Mode) {
	if next == a.mode {
		return
	}
	base := next.Base()
	switch {
	case base.Kind == mode.MainMenu:
		if a.viz != nil {
			a.log.Debug("visualization dropped", "sim", a.viz.Kind())
		}
		a.viz = nil
		a.tick = 0
	case a.viz == nil || a.viz.Kind() != base.Sim:
		v, err := a.reg.Get(base.Sim)
		if err != nil {
			a.log.Error("visualization unavailable", "sim", base.Sim, "err", err)
		}
		a.viz = v
		a.tick = 0
	}
	a.log.Info("mode changed", "from", a.mode, "to", next)
	a.mode = next
	a.visited = append(a.visited, next)
}

func (a *App) rebuild() error {
	size := a.r.Size()
	plan, err := a.layout.Apply(a.mode, size)
	if err != nil {
		return err
	}
	a.r.Clear()
	for _, p := range plan.Panels {
		a.log.Debug("panel created", "id", p.ID,
			"rows", p.Rect.Size.Rows, "cols", p.Rect.Size.Cols,
			"row", p.Rect.Origin.Row, "col", p.Rect.Origin.Col)
	}
	for _, o := range plan.Omitted {
		a.log.Info("panel omitted", "id", o.ID, "err", o.Err)
	}
	a.refreshStatus()
	return nil
}

func (a *App) refreshStatus() {
	if p := a.layout.Panel(panel.Status); p != nil {
		p.SetContent(layout.StatusLines(a.mode, a.lastKey, a.notice))
	}
}

func (a *App) advance() {
	if a.mode.Kind == mode.Visualizing {
		a.tick++
	}
}

func (a *App) render() {
	for _, p := range a.layout.Panels() {
		p.Render(a.r)
		if p.ID == panel.Main && a.viz != nil {
			c := sim.NewCanvas(a.r, p.Interior())
			a.viz.Render(c, sim.Tick{Count: a.tick, Mode: a.mode})
		}
	}
	a.r.Present()
}

func (a *App) fail(err error) (int, error) {
	a.log.Error("session ended", "err", err)
	if errors.Is(err, layout.ErrTerminalTooSmall) {
		return ExitTooSmall, err
	}
	return ExitFailure, err
}
