package teax

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/annika/fokus/pkg/a11y"
)

// Group is an ordered set of elements with key dispatch. It implements
// a11y.Container and a11y.KeyTarget, making it the standard focus-trap
// container, and owns the ordinary (non-wrapping) Tab/Shift+Tab movement
// the trap defers to.
//
// Top-level groups that are not backed by a trap usually want wrapping;
// enable it with SetWrap. Dialog groups used with a11y.ActivateTrap leave
// it off so the trap alone decides when focus wraps.
type Group struct {
	elements  []a11y.Element
	listeners []a11y.KeyListener
	wrap      bool
}

// NewGroup creates a group over the given elements, in order.
func NewGroup(elements ...a11y.Element) *Group {
	return &Group{elements: elements}
}

// SetWrap controls whether Next/Prev wrap at the ends of the tab order.
func (g *Group) SetWrap(wrap bool) {
	g.wrap = wrap
}

// Add appends elements to the end of the group's order.
func (g *Group) Add(elements ...a11y.Element) {
	g.elements = append(g.elements, elements...)
}

// Elements returns the group's elements in order.
func (g *Group) Elements() []a11y.Element {
	return g.elements
}

// AddKeyListener registers a listener, run before the group's own Tab
// handling. The returned function removes it; calling it twice is a no-op.
func (g *Group) AddKeyListener(l a11y.KeyListener) (remove func()) {
	g.listeners = append(g.listeners, l)
	idx := len(g.listeners) - 1
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		g.listeners[idx] = nil
	}
}

// Active returns the currently focused element, or nil. Derived from the
// elements' own focus flags so direct Focus/Blur calls never desync it.
func (g *Group) Active() a11y.Element {
	for _, el := range g.elements {
		if el.Focused() {
			return el
		}
	}
	return nil
}

// FocusFirst focuses the first focusable element, blurring the rest.
func (g *Group) FocusFirst() {
	focusables := a11y.CollectFocusables(g)
	if len(focusables) == 0 {
		return
	}
	a11y.SetFocus(g, focusables[0])
}

// Blur removes focus from every element.
func (g *Group) Blur() {
	a11y.SetFocus(g, nil)
}

// Next moves focus to the next focusable element and reports whether
// focus moved. Without wrap, focus stays put at the end of the order.
func (g *Group) Next() bool {
	return g.move(1)
}

// Prev moves focus to the previous focusable element and reports whether
// focus moved. Without wrap, focus stays put at the start of the order.
func (g *Group) Prev() bool {
	return g.move(-1)
}

func (g *Group) move(delta int) bool {
	focusables := a11y.CollectFocusables(g)
	if len(focusables) == 0 {
		return false
	}

	active := g.Active()
	idx := -1
	for i, el := range focusables {
		if el == active {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Nothing (or a non-focusable element) holds focus; start at an
		// end of the order.
		if delta > 0 {
			a11y.SetFocus(g, focusables[0])
		} else {
			a11y.SetFocus(g, focusables[len(focusables)-1])
		}
		return true
	}

	next := idx + delta
	if next < 0 || next >= len(focusables) {
		if !g.wrap {
			return false
		}
		next = (next + len(focusables)) % len(focusables)
	}
	a11y.SetFocus(g, focusables[next])
	return true
}

// HandleKey routes a key through the registered listeners in order, then
// falls back to Tab/Shift+Tab movement. It reports whether the key was
// consumed.
func (g *Group) HandleKey(msg tea.KeyMsg) bool {
	for _, l := range g.listeners {
		if l != nil && l(msg) {
			return true
		}
	}
	switch msg.String() {
	case "tab":
		return g.Next()
	case "shift+tab":
		return g.Prev()
	}
	return false
}
