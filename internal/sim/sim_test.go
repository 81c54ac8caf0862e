package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

func newTerminal(t *testing.T, cols, rows int) *screen.Terminal {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	term := screen.NewTerminal(s)
	p, _ := theme.New(theme.Options{Colors: 256})
	term.SetPalette(p)
	t.Cleanup(term.Close)
	return term
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	kinds := r.Kinds()
	if len(kinds) != 3 {
		t.Fatalf("expected 3 kinds, got %d", len(kinds))
	}
	for i, k := range mode.SimKinds() {
		if kinds[i] != k {
			t.Errorf("expected %s at %d, got %s", k, i, kinds[i])
		}
		v, err := r.Get(k)
		if err != nil {
			t.Fatalf("get %s: %v", k, err)
		}
		if v.Kind() != k {
			t.Errorf("expected kind %s, got %s", k, v.Kind())
		}
	}
}

func TestRegistryGetCreatesFreshInstances(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Get(mode.Deadlock)
	b, _ := r.Get(mode.Deadlock)
	if a == b {
		t.Error("expected a new visualization per Get")
	}
}

type stubViz struct{ kind mode.SimKind }

func (s *stubViz) Kind() mode.SimKind                  { return s.kind }
func (s *stubViz) Render(Canvas, Tick)                 {}
func (s *stubViz) HandleKey(screen.Key) (Update, bool) { return Update{}, false }

func TestRegistryRegisterAndUnknown(t *testing.T) {
	r := &Registry{factories: map[mode.SimKind]Factory{}}
	if _, err := r.Get(mode.Scheduler); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	r.Register(mode.Scheduler, func() Visualization { return &stubViz{kind: mode.Scheduler} })
	v, err := r.Get(mode.Scheduler)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(*stubViz); !ok {
		t.Errorf("expected registered visualization, got %T", v)
	}
}

func TestPlaceholderHandleKey(t *testing.T) {
	p := NewPlaceholder(mode.Scheduler)
	if _, ok := p.HandleKey(screen.Rune('x')); ok {
		t.Error("placeholder should not consume x")
	}
	upd, ok := p.HandleKey(screen.Rune('c'))
	if !ok || p.View() != ViewDots || upd.Notice != "view: dots" {
		t.Errorf("c should switch to dots, got %v %s %q", ok, p.View(), upd.Notice)
	}
	p.HandleKey(screen.Rune('c'))
	if p.View() != ViewChart {
		t.Error("c should switch back to the chart")
	}
}

func TestPlaceholderRenderRunning(t *testing.T) {
	term := newTerminal(t, 80, 30)
	c := NewCanvas(term, screen.Rect{Origin: screen.Point{Row: 1, Col: 1}, Size: screen.Size{Rows: 20, Cols: 60}})
	p := NewPlaceholder(mode.MemoryManagement)

	p.HandleKey(screen.Rune('z'))
	p.Render(c, Tick{Count: 1, Mode: mode.Visualize(mode.MemoryManagement)})
	p.HandleKey(screen.Rune('z'))
	p.Render(c, Tick{Count: 2, Mode: mode.Visualize(mode.MemoryManagement)})

	if got := p.History(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected history %v", got)
	}
	out := term.Dump()
	for _, want := range []string{"Memory Management", "tick 2", "running", "keys offered"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPlaceholderPausedDoesNotSample(t *testing.T) {
	term := newTerminal(t, 60, 20)
	c := NewCanvas(term, screen.Rect{Size: screen.Size{Rows: 20, Cols: 60}})
	p := NewPlaceholder(mode.Deadlock)
	p.Render(c, Tick{Count: 3, Mode: mode.Pause(mode.Deadlock)})
	if len(p.History()) != 0 {
		t.Error("paused render should not sample")
	}
	if !strings.Contains(term.Dump(), "paused") {
		t.Error("expected paused label")
	}
}

func TestPlaceholderSmallCanvasUsesDots(t *testing.T) {
	term := newTerminal(t, 20, 8)
	c := NewCanvas(term, screen.Rect{Size: screen.Size{Rows: 7, Cols: 12}})
	p := NewPlaceholder(mode.Scheduler)
	for i := 0; i < 5; i++ {
		p.HandleKey(screen.Rune('z'))
		p.Render(c, Tick{Count: i, Mode: mode.Visualize(mode.Scheduler)})
	}
	if strings.Contains(term.Dump(), "keys offered") {
		t.Error("chart should not be drawn in a small canvas")
	}
	found := false
	for _, r := range term.Dump() {
		if r > brailleBlank && r <= brailleBlank+0xff {
			found = true
		}
	}
	if !found {
		t.Error("expected braille dots")
	}
}

func TestBrailleTrace(t *testing.T) {
	b := NewBraille(4, 2)
	b.Trace([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	// lowest value sits bottom-left, highest top-right
	if []rune(lines[1])[0] == brailleBlank {
		t.Error("expected dots in the bottom-left cell")
	}
	if []rune(lines[0])[3] == brailleBlank {
		t.Error("expected dots in the top-right cell")
	}
	b.Set(-1, 0)
	b.Set(100, 100)
}
