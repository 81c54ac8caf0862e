package layout

import (
	"github.com/san-kum/learnscape/internal/mode"
	"github.com/san-kum/learnscape/internal/panel"
	"github.com/san-kum/learnscape/internal/screen"
)

// Manager owns the live panel set. Each Apply replaces the whole set; old
// panels are dropped, never reused.
type Manager struct {
	opts Options
	plan Plan
}

// NewManager returns a manager with no panels.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Apply lays out m and makes the result the live set. On error the live
// set is cleared.
func (lm *Manager) Apply(m mode.Mode, size screen.Size) (Plan, error) {
	plan, err := Compute(m, size, lm.opts)
	lm.plan = plan
	return plan, err
}

// Panels returns the live panels in z-order.
func (lm *Manager) Panels() []*panel.Panel {
	return lm.plan.Panels
}

// Panel returns the live panel with the given id, or nil if it was omitted.
func (lm *Manager) Panel(id panel.ID) *panel.Panel {
	return lm.plan.Find(id)
}
