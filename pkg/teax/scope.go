package teax

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/annika/fokus/pkg/a11y"
)

// FocusScope composes the dialog focus cycle: Open saves the current
// focus position and traps focus inside the dialog's container, Close
// releases the trap and restores the saved focus. Scopes stack, so nested
// dialogs unwind in reverse order.
type FocusScope struct {
	active func() a11y.Element
	stack  []scopeLayer
}

type scopeLayer struct {
	trap     *a11y.Trap
	restorer *a11y.Restorer
}

// NewFocusScope creates a scope reading the host's focused element
// through active, typically the main Group's Active method.
func NewFocusScope(active func() a11y.Element) *FocusScope {
	return &FocusScope{active: active}
}

// Open saves the current focus and activates a trap on container. The
// trap focuses the container's first focusable element immediately.
func (s *FocusScope) Open(container a11y.Container) {
	r := a11y.NewRestorer(s.active)
	r.Save()
	s.stack = append(s.stack, scopeLayer{
		trap:     a11y.ActivateTrap(container),
		restorer: r,
	})
}

// Close releases the most recent trap and restores the focus saved when
// it opened. A close with no open scope is a no-op.
func (s *FocusScope) Close() {
	if len(s.stack) == 0 {
		return
	}
	layer := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	layer.trap.Release()
	layer.restorer.Restore()
}

// CloseAll unwinds every open scope, innermost first.
func (s *FocusScope) CloseAll() {
	for len(s.stack) > 0 {
		s.Close()
	}
}

// Depth returns the number of open scopes.
func (s *FocusScope) Depth() int {
	return len(s.stack)
}

// IsOpen reports whether any scope is active.
func (s *FocusScope) IsOpen() bool {
	return len(s.stack) > 0
}

// HandleKey routes a key to the innermost trap, for hosts whose dialog
// container does not implement a11y.KeyTarget. Containers that do (like
// Group) receive keys through their own listeners instead.
func (s *FocusScope) HandleKey(msg tea.KeyMsg) bool {
	if len(s.stack) == 0 {
		return false
	}
	return s.stack[len(s.stack)-1].trap.HandleKey(msg)
}
