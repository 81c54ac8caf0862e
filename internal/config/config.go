package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/learnscape/internal/layout"
	"github.com/san-kum/learnscape/internal/logging"
	"github.com/san-kum/learnscape/internal/panel"
	"github.com/san-kum/learnscape/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme    = "tokyonight"
	DefaultBorder   = "rounded"
	DefaultLogFile  = "debug.log"
	DefaultLogLevel = "debug"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Theme      string `yaml:"theme"`
	Border     string `yaml:"border"`
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"`
	ShowBanner bool   `yaml:"show_banner"`
	// Colors overrides base colors by name, e.g. purple: "#bb9af7".
	Colors map[string]string `yaml:"colors,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:      DefaultTheme,
		Border:     DefaultBorder,
		LogFile:    DefaultLogFile,
		LogLevel:   DefaultLogLevel,
		ShowBanner: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the names in c. Color values are checked when the
// palette is built, since a bad one only costs that color.
func (c *Config) Validate() error {
	if _, ok := theme.GetScheme(c.Theme); !ok && c.Theme != "" {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	if _, err := panel.BorderStyle(c.Border); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PaletteOptions describes the palette for a terminal with the given
// number of colors.
func (c *Config) PaletteOptions(colors int) theme.Options {
	return theme.Options{Scheme: c.Theme, Colors: colors, Overrides: c.Colors}
}

func (c *Config) LayoutOptions() (layout.Options, error) {
	glyphs, err := panel.BorderStyle(c.Border)
	if err != nil {
		return layout.Options{}, err
	}
	return layout.Options{Glyphs: glyphs, ShowBanner: c.ShowBanner}, nil
}

func (c *Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}
