package a11y

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Trap confines Tab and Shift+Tab cycling to one container's focusable
// elements. The focusable set is computed once, at activation; containers
// that change afterwards keep trapping against the original first/last
// pair (known limitation, matching the snapshot semantics of
// CollectFocusables).
//
// A Trap only handles the two wrap cases: Shift+Tab on the first element
// wraps to the last, Tab on the last wraps to the first. All other Tab
// presses pass through so the container's ordinary cycling moves focus
// between interior elements.
type Trap struct {
	container Container
	first     Element
	last      Element
	remove    func()
	released  bool
}

// ActivateTrap computes c's focusable elements, focuses the first one, and
// installs a key listener on c if it supports listener registration.
//
// A nil container is logged and yields an inert trap whose Release is a
// no-op; ActivateTrap never panics. A container with zero focusable
// elements produces a trap whose wrap logic is a guarded no-op.
func ActivateTrap(c Container) *Trap {
	if c == nil {
		slog.Warn("a11y: activate trap called with nil container")
		return &Trap{released: true}
	}

	t := &Trap{container: c}
	focusables := CollectFocusables(c)
	if len(focusables) > 0 {
		t.first = focusables[0]
		t.last = focusables[len(focusables)-1]
		SetFocus(c, t.first)
	}

	if kt, ok := c.(KeyTarget); ok {
		t.remove = kt.AddKeyListener(t.HandleKey)
	} else {
		// Host routes keys to HandleKey manually; nothing to install.
		slog.Debug("a11y: trap container has no key target, expecting manual key routing")
	}
	return t
}

// HandleKey is the trap's key listener. It reports whether the key was
// consumed, which callers should treat as "default handling prevented".
// After Release it always reports false.
func (t *Trap) HandleKey(msg tea.KeyMsg) bool {
	if t == nil || t.released || t.first == nil {
		return false
	}
	switch msg.String() {
	case "shift+tab":
		if t.first.Focused() {
			SetFocus(t.container, t.last)
			return true
		}
	case "tab":
		if t.last.Focused() {
			SetFocus(t.container, t.first)
			return true
		}
	}
	return false
}

// Release removes the trap's key listener. Safe to call repeatedly; only
// the first call removes anything. A trap that is never released keeps
// intercepting keys, which is a leak; callers own the trap's lifetime.
func (t *Trap) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
}

// Released reports whether Release has been called (or the trap was
// created inert from invalid input).
func (t *Trap) Released() bool {
	return t == nil || t.released
}
