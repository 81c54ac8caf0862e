package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// MaxPairs is the number of color pairs a 16-color terminal can hold.
const MaxPairs = 16

// Base color names, in pair-id order (pair id = index + 1).
const (
	Black     = "black"
	Red       = "red"
	Green     = "green"
	Orange    = "orange"
	Blue      = "blue"
	Magenta   = "magenta"
	Cyan      = "cyan"
	White     = "white"
	DarkGrey  = "dark-grey"
	LightRed  = "light-red"
	LightGrn  = "light-green"
	Yellow    = "yellow"
	LightBlue = "light-blue"
	Purple    = "purple"
	Brown     = "brown"
	DimWhite  = "dim-white"
)

var baseNames = [MaxPairs]string{
	Black, Red, Green, Orange, Blue, Magenta, Cyan, White,
	DarkGrey, LightRed, LightGrn, Yellow, LightBlue, Purple, Brown, DimWhite,
}

// basic maps each base color onto the 8-color ANSI set used when the
// terminal cannot remap its color table.
var basic = [MaxPairs]tcell.Color{
	tcell.ColorBlack, tcell.ColorMaroon, tcell.ColorGreen, tcell.ColorOlive,
	tcell.ColorNavy, tcell.ColorPurple, tcell.ColorTeal, tcell.ColorSilver,
	tcell.ColorBlack, tcell.ColorMaroon, tcell.ColorGreen, tcell.ColorOlive,
	tcell.ColorNavy, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
}

// Scheme is a full set of base colors.
type Scheme struct {
	Name   string
	Colors [MaxPairs]lipgloss.Color
}

// Available schemes
var (
	SchemeTokyoNight = Scheme{
		Name: "tokyonight",
		Colors: [MaxPairs]lipgloss.Color{
			"#414868", // terminal black
			"#db4b4b",
			"#29ad2b",
			"#ff9e64",
			"#3d59a1",
			"#ff007c",
			"#7dcfff",
			"#ffffff",
			"#737aa2",
			"#f7768e",
			"#9ece6a",
			"#e0af68",
			"#7aa2f7",
			"#9d7cd8",
			"#896018",
			"#c0caf5",
		},
	}

	SchemeRetro = Scheme{
		Name: "retro",
		Colors: [MaxPairs]lipgloss.Color{
			"#001100", "#ff0000", "#00ff00", "#ffff00",
			"#005500", "#88ff88", "#00cc00", "#00ff00",
			"#005500", "#ff4444", "#88ff88", "#ffff00",
			"#00cc00", "#00ff00", "#557700", "#00dd00",
		},
	}

	SchemeMinimal = Scheme{
		Name: "minimal",
		Colors: [MaxPairs]lipgloss.Color{
			"#000000", "#ff0000", "#00ff00", "#ffaa00",
			"#0088ff", "#cccccc", "#0088ff", "#ffffff",
			"#888888", "#ff4444", "#00ff00", "#ffaa00",
			"#0088ff", "#cccccc", "#888888", "#cccccc",
		},
	}

	SchemeOcean = Scheme{
		Name: "ocean",
		Colors: [MaxPairs]lipgloss.Color{
			"#001a33", "#ff4444", "#00ff88", "#ffcc00",
			"#0077be", "#00a8cc", "#00a8cc", "#e0f0ff",
			"#4488aa", "#ff6b6b", "#00ff88", "#ffd700",
			"#0077be", "#4488aa", "#8b6b3c", "#b0d0e8",
		},
	}

	// Schemes lists every built-in scheme; the first is the default.
	Schemes = []Scheme{
		SchemeTokyoNight,
		SchemeRetro,
		SchemeMinimal,
		SchemeOcean,
	}
)

// GetScheme returns a scheme by name, falling back to the default.
func GetScheme(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return SchemeTokyoNight, false
}

// SchemeNames returns list of available scheme names
func SchemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = s.Name
	}
	return names
}

// BaseNames returns the base color names in pair-id order.
func BaseNames() []string {
	return append([]string(nil), baseNames[:]...)
}

func baseIndex(name string) (int, bool) {
	for i, n := range baseNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
