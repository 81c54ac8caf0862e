// Package mode holds the dashboard's application modes and the pure
// transition table that maps a keystroke in one mode to the next.
//
// # Modes
//
//	MainMenu                  initial; digit keys pick a visualization
//	Visualizing(kind)         a visualization is running
//	Paused(kind)              the running visualization is frozen
//	HelpOverlay(return mode)  transient; any key restores the return mode
//
// Transition never touches the terminal. The app package applies the
// returned Effect.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedKey reports a key that has no meaning in the current mode.
var ErrUnrecognizedKey = errors.New("mode: unrecognized key")

// Kind is the top-level mode.
type Kind int

const (
	MainMenu Kind = iota
	Visualizing
	Paused
	HelpOverlay
)

func (k Kind) String() string {
	switch k {
	case MainMenu:
		return "main-menu"
	case Visualizing:
		return "visualizing"
	case Paused:
		return "paused"
	case HelpOverlay:
		return "help"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// SimKind selects the visualization.
type SimKind int

const (
	Scheduler SimKind = iota
	MemoryManagement
	Deadlock
)

var simInfo = []struct {
	name  string
	label string
	blurb string
}{
	{"scheduler", "Process Scheduling", "how the CPU picks the next process"},
	{"memory", "Memory Management", "paging, allocation and fragmentation"},
	{"deadlock", "Deadlock", "resource graphs and circular waits"},
}

// SimKinds returns every visualization kind in menu order.
func SimKinds() []SimKind {
	return []SimKind{Scheduler, MemoryManagement, Deadlock}
}

func (s SimKind) valid() bool { return s >= 0 && int(s) < len(simInfo) }

func (s SimKind) String() string {
	if !s.valid() {
		return fmt.Sprintf("sim(%d)", int(s))
	}
	return simInfo[s].name
}

// Label is the human readable name shown in menus.
func (s SimKind) Label() string {
	if !s.valid() {
		return s.String()
	}
	return simInfo[s].label
}

// Blurb is a one-line description.
func (s SimKind) Blurb() string {
	if !s.valid() {
		return ""
	}
	return simInfo[s].blurb
}

// Digit is the menu key that selects s.
func (s SimKind) Digit() rune {
	return rune('1' + int(s))
}

// SimKindForDigit maps '1', '2', '3' to a kind.
func SimKindForDigit(r rune) (SimKind, bool) {
	s := SimKind(r - '1')
	if r < '1' || !s.valid() {
		return 0, false
	}
	return s, true
}

// Mode is the active application mode. Sim is meaningful for Visualizing
// and Paused, and for a HelpOverlay whose Under mode is one of those.
// Under is only set for HelpOverlay. Modes are comparable with ==.
type Mode struct {
	Kind  Kind
	Sim   SimKind
	Under Kind
}

// Menu returns the main menu mode.
func Menu() Mode { return Mode{Kind: MainMenu} }

// Visualize returns Visualizing(s).
func Visualize(s SimKind) Mode { return Mode{Kind: Visualizing, Sim: s} }

// Pause returns Paused(s).
func Pause(s SimKind) Mode { return Mode{Kind: Paused, Sim: s} }

// Help returns a help overlay that resumes m when dismissed. Help over
// help is the same overlay.
func Help(m Mode) Mode {
	if m.Kind == HelpOverlay {
		return m
	}
	return Mode{Kind: HelpOverlay, Sim: m.Sim, Under: m.Kind}
}

// Resume returns the mode a help overlay restores. Other modes return
// themselves.
func (m Mode) Resume() Mode {
	if m.Kind != HelpOverlay {
		return m
	}
	if m.Under == MainMenu {
		return Menu()
	}
	return Mode{Kind: m.Under, Sim: m.Sim}
}

// Base returns the mode that decides the panel layout underneath any
// overlay.
func (m Mode) Base() Mode {
	return m.Resume()
}

// ShowsSim reports whether the mode has a visualization panel.
func (m Mode) ShowsSim() bool {
	return m.Base().Kind != MainMenu
}

func (m Mode) String() string {
	switch m.Kind {
	case Visualizing, Paused:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Sim)
	case HelpOverlay:
		return fmt.Sprintf("help(%s)", m.Resume())
	}
	return m.Kind.String()
}

// Parse reads the names used on the command line: "menu", a sim name
// ("scheduler", "memory", "deadlock"), "paused:<sim>" and "help:<mode>".
func Parse(s string) (Mode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if rest, ok := strings.CutPrefix(s, "help:"); ok {
		under, err := Parse(rest)
		if err != nil {
			return Mode{}, err
		}
		return Help(under), nil
	}
	if s == "help" {
		return Help(Menu()), nil
	}
	if rest, ok := strings.CutPrefix(s, "paused:"); ok {
		k, err := parseSim(rest)
		if err != nil {
			return Mode{}, err
		}
		return Pause(k), nil
	}
	if s == "menu" || s == "main-menu" || s == "" {
		return Menu(), nil
	}
	k, err := parseSim(s)
	if err != nil {
		return Mode{}, err
	}
	return Visualize(k), nil
}

func parseSim(s string) (SimKind, error) {
	for _, k := range SimKinds() {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %s", s)
}
