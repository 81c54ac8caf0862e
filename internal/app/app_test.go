package app_test

import (
	"bytes"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/learnscape/internal/app"
	"github.com/san-kum/learnscape/internal/layout"
	"github.com/san-kum/learnscape/internal/logging"
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/screen"
	"github.com/san-kum/learnscape/internal/theme"
)

// step is one scripted keystroke, optionally preceded by a resize.
type step struct {
	key  screen.Key
	size screen.Size
}

// scripted replays keys over a simulation screen and reports io.EOF when
// the script runs out.
type scripted struct {
	*screen.Terminal
	scr   tcell.SimulationScreen
	steps []step
}

func (s *scripted) ReadKey() (screen.Key, error) {
	if len(s.steps) == 0 {
		return screen.Key{}, io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	if !st.size.Empty() {
		s.scr.SetSize(st.size.Cols, st.size.Rows)
	}
	return st.key, nil
}

func typed(keys string) []step {
	steps := make([]step, 0, len(keys))
	for _, r := range keys {
		steps = append(steps, step{key: screen.Rune(r)})
	}
	return steps
}

func newScripted(rows, cols int, steps ...step) *scripted {
	scr := tcell.NewSimulationScreen("UTF-8")
	Expect(scr.Init()).To(Succeed())
	scr.SetSize(cols, rows)
	term := screen.NewTerminal(scr)
	pal, _ := theme.New(theme.Options{Colors: 256})
	term.SetPalette(pal)
	DeferCleanup(term.Close)
	return &scripted{Terminal: term, scr: scr, steps: steps}
}

var _ = Describe("App", func() {
	var logBuf *bytes.Buffer

	session := func(r screen.Renderer) *app.App {
		return app.New(r, app.Options{Logger: logging.New(logBuf, logging.LevelDebug)})
	}

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
	})

	Describe("Run", func() {
		It("quits from the main menu with exit code 0", func() {
			a := session(newScripted(40, 120, typed("q")...))
			code, err := a.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(app.ExitOK))
			Expect(a.Visited()).To(Equal([]mode.Mode{mode.Menu()}))
			Expect(logBuf.String()).To(ContainSubstring("INFO Quitting..."))
		})

		It("walks memory, pause, resume and back to the menu", func() {
			a := session(newScripted(40, 120, typed("2ppqq")...))
			code, err := a.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(app.ExitOK))
			Expect(a.Mode()).To(Equal(mode.Menu()))
			Expect(a.Visited()).To(Equal([]mode.Mode{
				mode.Menu(),
				mode.Visualize(mode.MemoryManagement),
				mode.Pause(mode.MemoryManagement),
				mode.Visualize(mode.MemoryManagement),
				mode.Menu(),
			}))
		})

		It("keeps running on a terminal too small for any panel", func() {
			a := session(newScripted(5, 10, typed("1?xqq")...))
			code, err := a.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(app.ExitOK))
			Expect(logBuf.String()).To(ContainSubstring("panel omitted id=control"))
		})

		It("ends with exit code 2 on an empty terminal", func() {
			a := session(newScripted(0, 0, typed("q")...))
			code, err := a.Run()
			Expect(err).To(MatchError(layout.ErrTerminalTooSmall))
			Expect(code).To(Equal(app.ExitTooSmall))
		})

		It("fails when input ends without a quit", func() {
			a := session(newScripted(40, 120, typed("1")...))
			code, err := a.Run()
			Expect(err).To(MatchError(io.EOF))
			Expect(code).To(Equal(app.ExitFailure))
			Expect(a.Mode()).To(Equal(mode.Visualize(mode.Scheduler)))
		})

		It("rebuilds on resize without changing mode", func() {
			steps := append(typed("3"), step{key: screen.Resize(), size: screen.Size{Rows: 12, Cols: 40}})
			steps = append(steps, typed("qq")...)
			term := newScripted(40, 120, steps...)
			a := session(term)
			code, err := a.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(app.ExitOK))
			Expect(a.Visited()).To(Equal([]mode.Mode{
				mode.Menu(),
				mode.Visualize(mode.Deadlock),
				mode.Menu(),
			}))
			Expect(logBuf.String()).To(ContainSubstring("panel omitted"))
		})
	})

	Describe("Handle", func() {
		var (
			term *scripted
			a    *app.App
		)

		BeforeEach(func() {
			term = newScripted(40, 120)
			a = session(term)
			Expect(a.Show(mode.Menu())).To(Succeed())
		})

		press := func(keys string) {
			for _, r := range keys {
				quit, err := a.Handle(screen.Rune(r))
				Expect(err).NotTo(HaveOccurred())
				Expect(quit).To(BeFalse())
			}
		}

		It("returns from help to the exact prior mode", func() {
			press("2p?")
			Expect(a.Mode()).To(Equal(mode.Help(mode.Pause(mode.MemoryManagement))))
			Expect(term.Dump()).To(ContainSubstring("help"))
			press("z")
			Expect(a.Mode()).To(Equal(mode.Pause(mode.MemoryManagement)))
		})

		It("reports invalid keys in the status panel and the log", func() {
			press("x")
			Expect(a.Mode()).To(Equal(mode.Menu()))
			Expect(a.Notice()).To(Equal("invalid key: x"))
			Expect(term.Dump()).To(ContainSubstring("invalid key: x"))
			Expect(logBuf.String()).To(ContainSubstring(`WARN invalid key key=x mode=main-menu err="mode: unrecognized key"`))
		})

		It("clears the notice on the next key", func() {
			press("x ")
			Expect(a.Notice()).To(BeEmpty())
			Expect(term.Dump()).NotTo(ContainSubstring("invalid key"))
		})

		It("offers unknown keys to the visualization first", func() {
			press("1c")
			Expect(a.Mode()).To(Equal(mode.Visualize(mode.Scheduler)))
			Expect(a.Notice()).To(Equal("view: dots"))
			Expect(logBuf.String()).NotTo(ContainSubstring("WARN"))
		})

		It("treats r as reserved", func() {
			press("1r")
			Expect(a.Mode()).To(Equal(mode.Visualize(mode.Scheduler)))
			Expect(a.Notice()).To(BeEmpty())
			Expect(logBuf.String()).To(ContainSubstring("reserved key key=r"))
		})

		It("draws the visualization in the main panel", func() {
			press("3")
			out := term.Dump()
			Expect(out).To(ContainSubstring("Deadlock"))
			Expect(out).To(ContainSubstring("running"))
			press("p")
			Expect(term.Dump()).To(ContainSubstring("paused"))
		})

		It("quits on escape only from the main menu", func() {
			press("1")
			quit, err := a.Handle(screen.Escape())
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeFalse())
			Expect(a.Mode()).To(Equal(mode.Menu()))

			quit, err = a.Handle(screen.Escape())
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeTrue())
		})

		Describe("returning to a smaller panel set", func() {
			// rows above the status panel, whose last-key field differs
			var menuRows []string

			BeforeEach(func() {
				fresh := newScripted(40, 120)
				Expect(session(fresh).Show(mode.Menu())).To(Succeed())
				menuRows = strings.Split(fresh.Dump(), "\n")[:36]
			})

			It("leaves nothing of a dismissed help overlay", func() {
				press("?z")
				Expect(a.Mode()).To(Equal(mode.Menu()))
				Expect(strings.Split(term.Dump(), "\n")[:36]).To(Equal(menuRows))
			})

			It("leaves nothing of the visualization panel", func() {
				press("1q")
				Expect(a.Mode()).To(Equal(mode.Menu()))
				Expect(term.Dump()).NotTo(ContainSubstring("keys offered"))
				Expect(strings.Split(term.Dump(), "\n")[:36]).To(Equal(menuRows))
			})
		})

		It("logs every panel it creates", func() {
			Expect(logBuf.String()).To(ContainSubstring("panel created id=status rows=4 cols=103 row=36 col=16"))
		})
	})
})
