package a11y

import tea "github.com/charmbracelet/bubbletea"

// stubElement is a minimal Element for tests, with optional kind,
// tab-index, and disabled capabilities.
type stubElement struct {
	name     string
	kind     Kind
	focused  bool
	disabled bool
	tabIndex int
	tabSet   bool
}

func (s *stubElement) Focus()        { s.focused = true }
func (s *stubElement) Blur()         { s.focused = false }
func (s *stubElement) Focused() bool { return s.focused }
func (s *stubElement) Kind() Kind    { return s.kind }

// stubTabStop layers an explicit tab index and a disabled flag onto
// stubElement, so tests can combine both capabilities on one element.
type stubTabStop struct{ stubElement }

func (s *stubTabStop) TabIndex() (int, bool) { return s.tabIndex, s.tabSet }
func (s *stubTabStop) Disabled() bool        { return s.disabled }

// stubDisableable layers a disabled flag onto stubElement.
type stubDisableable struct{ stubElement }

func (s *stubDisableable) Disabled() bool { return s.disabled }

// stubContainer implements Container and KeyTarget the way teax.Group
// does, so trap tests exercise listener install and removal.
type stubContainer struct {
	elements  []Element
	listeners []KeyListener
}

func (c *stubContainer) Elements() []Element { return c.elements }

func (c *stubContainer) AddKeyListener(l KeyListener) (remove func()) {
	c.listeners = append(c.listeners, l)
	idx := len(c.listeners) - 1
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		c.listeners[idx] = nil
	}
}

// dispatch feeds a key through the container's listeners, reporting
// whether any listener consumed it.
func (c *stubContainer) dispatch(msg tea.KeyMsg) bool {
	for _, l := range c.listeners {
		if l != nil && l(msg) {
			return true
		}
	}
	return false
}

func button(name string) *stubElement {
	return &stubElement{name: name, kind: KindButton}
}

func tabKey() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func shiftTabKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }
