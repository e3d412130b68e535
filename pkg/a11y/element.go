package a11y

import tea "github.com/charmbracelet/bubbletea"

// Element is anything that can hold keyboard focus. Widgets implement it
// directly; bubbles-based components usually delegate to their model's
// Focus/Blur/Focused methods.
type Element interface {
	Focus()
	Blur()
	Focused() bool
}

// Kind classifies a widget the way HTML tags classify DOM elements.
// Natively interactive kinds are focusable by default; generic elements
// need an explicit tab index to join the tab order.
type Kind int

const (
	KindGeneric Kind = iota
	KindButton
	KindInput
	KindSelect
	KindTextArea
	KindLink
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	case KindTextArea:
		return "textarea"
	case KindLink:
		return "link"
	default:
		return "generic"
	}
}

// Kinder is implemented by elements that declare a widget kind.
// Elements without it are treated as KindGeneric.
type Kinder interface {
	Kind() Kind
}

// TabStopper is implemented by elements carrying an explicit tab index.
// The bool reports whether the index was explicitly set, which matters for
// index zero: an explicit zero joins the tab order, an absent one does not.
type TabStopper interface {
	TabIndex() (int, bool)
}

// Disableable is implemented by elements that can be disabled. A disabled
// element is never focusable, regardless of kind or tab index.
type Disableable interface {
	Disabled() bool
}

// Container exposes an ordered set of elements, in visual order.
type Container interface {
	Elements() []Element
}

// KeyListener receives a key event and reports whether it consumed it.
// A consumed key stops propagating to later listeners and to the
// container's default key handling.
type KeyListener func(tea.KeyMsg) bool

// KeyTarget is implemented by containers that support listener
// registration. AddKeyListener returns a removal function; calling it more
// than once is a no-op.
type KeyTarget interface {
	AddKeyListener(KeyListener) (remove func())
}

// SetFocus gives el exclusive focus within c, blurring every other element.
// A nil el only blurs. Elements outside c are not touched.
func SetFocus(c Container, el Element) {
	if c == nil {
		return
	}
	for _, other := range c.Elements() {
		if other != el && other.Focused() {
			other.Blur()
		}
	}
	if el != nil && !el.Focused() {
		el.Focus()
	}
}
