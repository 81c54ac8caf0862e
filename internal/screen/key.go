package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// KeyKind classifies a key event.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEscape
	KeyEnter
	KeyResize
	KeyOther
)

// Key is one keystroke, or a resize notification delivered through the
// same channel so the loop rebuilds its layout.
type Key struct {
	Kind KeyKind
	Rune rune
	Name string
}

// Rune returns a printable key.
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Escape returns the escape key.
func Escape() Key {
	return Key{Kind: KeyEscape, Name: "Esc"}
}

// Resize returns a resize notification.
func Resize() Key {
	return Key{Kind: KeyResize, Name: "Resize"}
}

// Is reports whether k is the printable key r.
func (k Key) Is(r rune) bool {
	return k.Kind == KeyRune && k.Rune == r
}

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		if k.Rune == ' ' {
			return "Space"
		}
		return string(k.Rune)
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyResize:
		return "Resize"
	}
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("key(%d)", k.Rune)
}

func keyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Rune(ev.Rune())
	case tcell.KeyEscape:
		return Escape()
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter, Name: "Enter"}
	}
	return Key{Kind: KeyOther, Name: ev.Name()}
}
