package layout

import (
	"fmt"

	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/panel"
	"github.com/san-kum/learnscape/internal/theme"
)

// Banner is the title art.
var Banner = []string{
	"  ,--.                             ,---.                           ",
	"  |  |   ,---. ,--,--,--.--,--,--,'   .-' ,---.,--,--.,---. ,---.  ",
	"  |  |  | .-. ' ,-.  |  .--|      `.  `-.| .--' ,-.  | .-. | .-. : ",
	"  |  '--\\   --\\ '-'  |  |  |  ||  .-'    \\ `--\\ '-'  | '-' \\   --. ",
	"  `-----'`----'`--`--`--'  `--''--`-----' `---'`--`--|  |-' `----' ",
}

func keyLine(key, label string) panel.Line {
	return panel.Line{
		{Text: key, Token: theme.MenuKey},
		{Text: " " + label, Token: theme.TextMuted},
	}
}

func controlContent(m mode.Mode) []panel.Line {
	if m.Base().Kind == mode.MainMenu {
		return []panel.Line{
			keyLine("1-3", "open"),
			keyLine("?", "help"),
			keyLine("q", "quit"),
		}
	}
	return []panel.Line{
		keyLine("p", "pause"),
		keyLine("?", "help"),
		keyLine("q", "menu"),
	}
}

// StatusLines renders the status panel body: the current mode and the last
// key pressed, plus an optional notice.
func StatusLines(m mode.Mode, lastKey, notice string) []panel.Line {
	if lastKey == "" {
		lastKey = "-"
	}
	lines := []panel.Line{{
		{Text: "mode ", Token: theme.StatusLabel},
		{Text: m.String(), Token: theme.StatusValue},
		{Text: "   key ", Token: theme.StatusLabel},
		{Text: lastKey, Token: theme.StatusValue},
	}}
	if notice != "" {
		lines = append(lines, panel.Text(notice, theme.Warning))
	}
	return lines
}

func menuContent() []panel.Line {
	lines := []panel.Line{
		{},
		panel.Text("Choose a visualization", theme.MenuHighlight),
		{},
	}
	for _, k := range mode.SimKinds() {
		lines = append(lines,
			panel.Line{
				{Text: "[" + string(k.Digit()) + "]", Token: theme.MenuKey},
				{Text: " " + k.Label(), Token: theme.MenuLabel},
			},
			panel.Text(k.Blurb(), theme.TextMuted),
			panel.Line{},
		)
	}
	return lines
}

func optionsContent(m mode.Mode) []panel.Line {
	base := m.Base()
	if base.Kind == mode.MainMenu {
		return []panel.Line{
			panel.Text("Options", theme.MenuHighlight),
			{},
			keyLine("1 2 3", "select a visualization"),
			keyLine("?", "show help"),
			keyLine("space", "redraw"),
			keyLine("q esc", "quit"),
		}
	}
	state := "running"
	if base.Kind == mode.Paused {
		state = "paused"
	}
	return []panel.Line{
		panel.Text(base.Sim.Label(), theme.MenuHighlight),
		panel.Line{
			{Text: "state ", Token: theme.StatusLabel},
			{Text: state, Token: theme.StatusValue},
		},
		{},
		keyLine("p", "pause / resume"),
		keyLine("r", "reset (reserved)"),
		keyLine("?", "show help"),
		keyLine("q esc", "back to menu"),
	}
}

func mainTitle(m mode.Mode) string {
	base := m.Base()
	if base.Kind == mode.Paused {
		return fmt.Sprintf("%s (paused)", base.Sim.Label())
	}
	return base.Sim.Label()
}

func helpContent(m mode.Mode) []panel.Line {
	return []panel.Line{
		panel.Text("LearnScape", theme.MenuHighlight),
		{},
		keyLine("1 2 3", "open a visualization"),
		keyLine("p    ", "pause or resume"),
		keyLine("q esc", "back, or quit from menu"),
		keyLine("space", "redraw the screen"),
		keyLine("?    ", "this help"),
		{},
		panel.Text("returns to "+m.Resume().String(), theme.TextMuted),
		panel.Text("press any key to close", theme.HelpText),
	}
}
