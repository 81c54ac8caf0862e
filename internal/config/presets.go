package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"plain": {
		Theme: "minimal", Border: "normal", LogFile: DefaultLogFile, LogLevel: "warn",
		ShowBanner: false,
	},
	"retro": {
		Theme: "retro", Border: "double", LogFile: DefaultLogFile, LogLevel: "info",
		ShowBanner: true,
	},
	"ocean": {
		Theme: "ocean", Border: "thick", LogFile: DefaultLogFile, LogLevel: "info",
		ShowBanner: true,
	},
	"debug": {
		Theme: DefaultTheme, Border: DefaultBorder, LogFile: DefaultLogFile, LogLevel: "debug",
		ShowBanner: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if p.Colors != nil {
		cfg.Colors = make(map[string]string, len(p.Colors))
		for k, v := range p.Colors {
			cfg.Colors[k] = v
		}
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
