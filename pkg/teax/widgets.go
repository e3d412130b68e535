package teax

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/annika/fokus/pkg/a11y"
)

// Button is a focusable push button.
type Button struct {
	Label    string
	ID       string
	disabled bool
	focused  bool

	tabIndex    int
	tabIndexSet bool
}

// NewButton creates a button with a generated ID.
func NewButton(label string) *Button {
	return &Button{Label: label, ID: a11y.NextID("btn")}
}

func (b *Button) Focus()        { b.focused = true }
func (b *Button) Blur()         { b.focused = false }
func (b *Button) Focused() bool { return b.focused }

// Kind reports the button's widget kind.
func (b *Button) Kind() a11y.Kind { return a11y.KindButton }

// Disabled reports whether the button is disabled.
func (b *Button) Disabled() bool { return b.disabled }

// SetDisabled toggles the disabled state, blurring a disabled button.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.focused = false
	}
}

// SetTabIndex assigns an explicit tab index.
func (b *Button) SetTabIndex(i int) {
	b.tabIndex = i
	b.tabIndexSet = true
}

// TabIndex returns the explicit tab index, if one was set.
func (b *Button) TabIndex() (int, bool) { return b.tabIndex, b.tabIndexSet }

// View renders the button.
func (b *Button) View() string {
	switch {
	case b.disabled:
		return ButtonDisabledStyle.Render(b.Label)
	case b.focused:
		return ButtonFocusedStyle.Render(b.Label)
	default:
		return ButtonStyle.Render(b.Label)
	}
}

// Link is a focusable hyperlink. Like an anchor without an href, a Link
// with an empty Target is not natively focusable.
type Link struct {
	Label   string
	Target  string
	focused bool
}

// NewLink creates a link pointing at target.
func NewLink(label, target string) *Link {
	return &Link{Label: label, Target: target}
}

func (l *Link) Focus()        { l.focused = true }
func (l *Link) Blur()         { l.focused = false }
func (l *Link) Focused() bool { return l.focused }

// Kind reports KindLink only when the link has a target.
func (l *Link) Kind() a11y.Kind {
	if l.Target == "" {
		return a11y.KindGeneric
	}
	return a11y.KindLink
}

// View renders the link.
func (l *Link) View() string {
	if l.focused {
		return LinkFocusedStyle.Render(l.Label)
	}
	return LinkStyle.Render(l.Label)
}

// Text is static, non-focusable content.
type Text struct {
	Content string
}

// NewText creates a static text element.
func NewText(content string) *Text {
	return &Text{Content: content}
}

func (t *Text) Focus()          {}
func (t *Text) Blur()           {}
func (t *Text) Focused() bool   { return false }
func (t *Text) Kind() a11y.Kind { return a11y.KindGeneric }

// View renders the text.
func (t *Text) View() string { return t.Content }

// Input wraps a bubbles text input as a focusable element.
type Input struct {
	Model    textinput.Model
	disabled bool
}

// NewInput creates an input with the given placeholder.
func NewInput(placeholder string) *Input {
	m := textinput.New()
	m.Placeholder = placeholder
	return &Input{Model: m}
}

// Focus focuses the underlying model. The cursor-blink command the model
// returns is dropped; hosts that want blinking run textinput's Blink on
// their own.
func (i *Input) Focus()        { i.Model.Focus() }
func (i *Input) Blur()         { i.Model.Blur() }
func (i *Input) Focused() bool { return i.Model.Focused() }

// Kind reports the input's widget kind.
func (i *Input) Kind() a11y.Kind { return a11y.KindInput }

// Disabled reports whether the input is disabled.
func (i *Input) Disabled() bool { return i.disabled }

// SetDisabled toggles the disabled state, blurring a disabled input.
func (i *Input) SetDisabled(disabled bool) {
	i.disabled = disabled
	if disabled {
		i.Model.Blur()
	}
}

// Update forwards a message to the underlying model while focused.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if !i.Model.Focused() {
		return nil
	}
	var cmd tea.Cmd
	i.Model, cmd = i.Model.Update(msg)
	return cmd
}

// Value returns the input's current text.
func (i *Input) Value() string { return i.Model.Value() }

// View renders the input.
func (i *Input) View() string { return i.Model.View() }
