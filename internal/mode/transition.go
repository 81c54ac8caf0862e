package mode

import "github.com/san-kum/learnscape/internal/screen"

// Effect tells the loop what a keystroke requires.
type Effect int

const (
	// EffectIgnore: the key is known but has no effect in this mode.
	EffectIgnore Effect = iota
	// EffectRefresh: re-render the existing panels.
	EffectRefresh
	// EffectReserved: the key is reserved for a future feature.
	EffectReserved
	// EffectRebuild: the mode changed, or the terminal was resized.
	EffectRebuild
	// EffectInvalid: the key means nothing in this mode.
	EffectInvalid
	// EffectQuit: end the session.
	EffectQuit
)

func (e Effect) String() string {
	switch e {
	case EffectIgnore:
		return "ignore"
	case EffectRefresh:
		return "refresh"
	case EffectReserved:
		return "reserved"
	case EffectRebuild:
		return "rebuild"
	case EffectInvalid:
		return "invalid"
	case EffectQuit:
		return "quit"
	}
	return "unknown"
}

// Transition returns the mode after k and what the loop must do about it.
// It is total over every mode and key.
func Transition(m Mode, k screen.Key) (Mode, Effect) {
	if k.Kind == screen.KeyResize {
		return m, EffectRebuild
	}
	if m.Kind == HelpOverlay {
		return m.Resume(), EffectRebuild
	}

	switch {
	case k.Is('?'):
		return Help(m), EffectRebuild
	case k.Kind == screen.KeyEscape, k.Is('q'):
		if m.Kind == MainMenu {
			return m, EffectQuit
		}
		return Menu(), EffectRebuild
	case k.Is(' '):
		return m, EffectRefresh
	case k.Is('r'):
		return m, EffectReserved
	case k.Is('p'):
		switch m.Kind {
		case Visualizing:
			return Pause(m.Sim), EffectRebuild
		case Paused:
			return Visualize(m.Sim), EffectRebuild
		}
		return m, EffectIgnore
	}

	if k.Kind == screen.KeyRune {
		if s, ok := SimKindForDigit(k.Rune); ok {
			if m.Kind == MainMenu {
				return Visualize(s), EffectRebuild
			}
			return m, EffectIgnore
		}
	}
	return m, EffectInvalid
}
