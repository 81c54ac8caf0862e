package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/learnscape/internal/app"
	"github.com/san-kum/learnscape/internal/config"
	"github.com/san-kum/learnscape/internal/layout"
	"github.com/san-kum/learnscape/internal/logging"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/sim"
	"github.com/san-kum/learnscape/internal/theme"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	themeName  string
	logFile    string
	// layout and snapshot
	modeName string
	rows     int
	cols     int
)

// exitError carries the process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	rootCmd := &cobra.Command{
		Use:          "learnscape",
		Short:        "terminal dashboard for computer science visualizations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runDashboard,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color scheme")
	rootCmd.Flags().StringVar(&logFile, "log", config.DefaultLogFile, "debug log path, empty to disable")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print the panel geometry for a mode",
		Args:  cobra.NoArgs,
		RunE:  printLayout,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a mode off-screen and print it",
		Args:  cobra.NoArgs,
		RunE:  printSnapshot,
	}

	for _, c := range []*cobra.Command{layoutCmd, snapshotCmd} {
		c.Flags().StringVar(&modeName, "mode", "menu", "mode: menu, scheduler, memory, deadlock, paused:<sim>, help:<mode>")
		c.Flags().IntVar(&rows, "rows", 40, "terminal rows")
		c.Flags().IntVar(&cols, "cols", 120, "terminal columns")
	}

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "show the color tokens of the configured scheme",
		Args:  cobra.NoArgs,
		RunE:  printPalette,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color schemes and config presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("schemes:")
			for _, s := range theme.SchemeNames() {
				fmt.Printf("  %s\n", s)
			}
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(layoutCmd, snapshotCmd, paletteCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(app.ExitFailure)
	}
}

// loadConfig applies, in order, the defaults, the preset, the config file
// and the command line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if f := cmd.Flags().Lookup("log"); f != nil && f.Changed {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lopts, err := cfg.LayoutOptions()
	if err != nil {
		return err
	}

	log, closer, err := logging.Open(cfg.LogFile, cfg.Level())
	if err != nil {
		return err
	}
	defer closer.Close()

	term, err := screen.Open()
	if err != nil {
		log.Error("terminal unavailable", "err", err)
		return err
	}
	defer term.Close()

	pal, err := theme.Init(cfg.PaletteOptions(term.Colors()))
	if err != nil {
		log.Warn("palette fallback", "err", err)
	}
	term.SetPalette(pal)

	a := app.New(term, app.Options{
		Layout:   lopts,
		Registry: sim.NewRegistry(),
		Logger:   log,
	})
	code, err := a.Run()
	if code != app.ExitOK {
		return &exitError{code: code, err: err}
	}
	return nil
}

func targetMode() (mode.Mode, screen.Size, error) {
	m, err := mode.Parse(modeName)
	if err != nil {
		return mode.Mode{}, screen.Size{}, err
	}
	return m, screen.Size{Rows: rows, Cols: cols}, nil
}

func printLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lopts, err := cfg.LayoutOptions()
	if err != nil {
		return err
	}
	m, size, err := targetMode()
	if err != nil {
		return err
	}

	plan, err := layout.Compute(m, size, lopts)
	if err != nil {
		return &exitError{code: app.ExitTooSmall, err: err}
	}

	fmt.Printf("%s on %s\n\n", m, size)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tROW\tCOL\tROWS\tCOLS\tTITLE")
	for _, p := range plan.Panels {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			p.ID,
			p.Rect.Origin.Row,
			p.Rect.Origin.Col,
			p.Rect.Size.Rows,
			p.Rect.Size.Cols,
			p.Title,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(plan.Omitted) > 0 {
		fmt.Println("\nomitted:")
		for _, o := range plan.Omitted {
			fmt.Printf("  %s: %v\n", o.ID, o.Err)
		}
	}
	return nil
}

func printSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lopts, err := cfg.LayoutOptions()
	if err != nil {
		return err
	}
	m, size, err := targetMode()
	if err != nil {
		return err
	}

	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		return err
	}
	scr.SetSize(size.Cols, size.Rows)
	term := screen.NewTerminal(scr)
	defer term.Close()

	pal, err := theme.New(cfg.PaletteOptions(256))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	term.SetPalette(pal)

	a := app.New(term, app.Options{Layout: lopts})
	if err := a.Show(m); err != nil {
		if errors.Is(err, layout.ErrTerminalTooSmall) {
			return &exitError{code: app.ExitTooSmall, err: err}
		}
		return err
	}
	fmt.Print(term.Dump())
	return nil
}

func printPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pal, err := theme.New(cfg.PaletteOptions(256))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	pairs := pal.Pairs()

	fmt.Printf("scheme %s\n\n", pal.Scheme())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tPAIR\tCOLOR\tHEX\tSAMPLE")
	for _, tok := range pal.Tokens() {
		id := pal.Pair(tok)
		pr := pairs[id-1]
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			tok,
			id,
			pr.Name,
			pr.Color,
			pal.Lipgloss(tok).Render("██████"),
		)
	}
	return w.Flush()
}
