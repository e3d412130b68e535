// Package demo is the example program for the toolkit: a small screen of
// focusable widgets with a confirm dialog (focus scope), a settings form,
// a markdown help overlay, and a live region announcing state changes.
package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/annika/fokus/pkg/locale"
	"github.com/annika/fokus/internal/prefs"
	"github.com/annika/fokus/pkg/a11y"
	"github.com/annika/fokus/pkg/teax"
)

const helpMarkdown = `# fokus demo

| Key | Action |
|-----|--------|
| tab / shift+tab | Move focus |
| enter | Activate the focused widget |
| d | Open the confirm dialog |
| s | Open settings |
| ? | Toggle this help |
| q | Quit |

While the dialog is open, focus is trapped inside it: tabbing past the
last button wraps to the first, and closing the dialog returns focus to
the widget that had it before.
`

// Model is the demo program's Bubble Tea model.
type Model struct {
	reg   *locale.Registry
	store *prefs.Store

	main   *teax.Group
	save   *teax.Button
	delete *teax.Button
	name   *teax.Input
	docs   *teax.Link

	scope  *teax.FocusScope
	dialog *teax.Group
	keep   *teax.Button
	drop   *teax.Button

	region    *teax.LiveRegion
	announcer *a11y.Announcer

	form         *huh.Form
	formOpen     bool
	localeChoice string
	reduceMotion bool

	helpOpen bool
	helpView string

	width  int
	height int
}

// New builds the demo model. store may be nil when preferences are
// unavailable; the demo then simply does not persist settings.
func New(reg *locale.Registry, store *prefs.Store) *Model {
	if reg == nil {
		reg = locale.Default
	}

	m := &Model{
		reg:    reg,
		store:  store,
		save:   teax.NewButton("Save"),
		delete: teax.NewButton("Delete"),
		name:   teax.NewInput("name"),
		docs:   teax.NewLink("docs", "https://example.com/fokus"),
		region: teax.NewLiveRegion(),
	}
	m.main = teax.NewGroup(m.name, m.save, m.delete, m.docs)
	m.main.SetWrap(true)
	m.scope = teax.NewFocusScope(m.activeElement)
	m.announcer = a11y.NewAnnouncer(m.region)
	m.localeChoice = reg.Current()
	return m
}

// activeElement reads focus across layers, innermost first.
func (m *Model) activeElement() a11y.Element {
	if m.dialog != nil {
		if el := m.dialog.Active(); el != nil {
			return el
		}
	}
	return m.main.Active()
}

// Init focuses the first widget.
func (m *Model) Init() tea.Cmd {
	m.main.FocusFirst()
	return nil
}

// Update handles program messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.region.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formOpen && m.form != nil {
		return m.updateForm(msg)
	}
	cmd := m.region.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.formOpen && m.form != nil {
		return m.updateForm(msg)
	}

	if m.helpOpen {
		m.helpOpen = false
		return m, nil
	}

	if m.dialog != nil {
		return m.updateDialog(msg)
	}

	// Shortcuts apply only while the text input is not capturing keys.
	if !m.name.Focused() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			return m.openHelp()
		case "d":
			return m.openDialog()
		case "s":
			return m.openSettings()
		}
	}
	if msg.String() == "enter" {
		return m.activateFocused()
	}

	if m.main.HandleKey(msg) {
		return m, nil
	}
	// Unconsumed keys go to the focused input, if any.
	if m.name.Focused() {
		return m, m.name.Update(msg)
	}
	return m, nil
}

// openDialog opens the confirm dialog under a focus scope: current focus
// is saved, the trap focuses the first dialog button.
func (m *Model) openDialog() (tea.Model, tea.Cmd) {
	m.keep = teax.NewButton(m.reg.T(locale.KeyCancel))
	m.drop = teax.NewButton(m.reg.T(locale.KeyClose))
	m.dialog = teax.NewGroup(m.keep, m.drop)
	m.scope.Open(m.dialog)
	return m, teax.AnnounceCmd(m.announcer, a11y.DialogLabel(m.reg, ""), a11y.Polite)
}

// closeDialog releases the trap and restores the saved focus.
func (m *Model) closeDialog(announce string) (tea.Model, tea.Cmd) {
	m.scope.Close()
	m.dialog = nil
	m.keep = nil
	m.drop = nil
	if announce == "" {
		return m, nil
	}
	return m, teax.AnnounceCmd(m.announcer, announce, a11y.Polite)
}

func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDialog(m.reg.T(locale.KeyClose))
	case "enter":
		if m.drop != nil && m.drop.Focused() {
			return m.closeDialog(m.reg.T(locale.KeySuccess))
		}
		return m.closeDialog(m.reg.T(locale.KeyClose))
	}
	m.dialog.HandleKey(msg)
	return m, nil
}

func (m *Model) activateFocused() (tea.Model, tea.Cmd) {
	switch m.main.Active() {
	case m.save:
		return m, teax.AnnounceCmd(m.announcer, m.reg.T(locale.KeySuccess), a11y.Polite)
	case m.delete:
		return m, teax.AnnounceCmd(m.announcer, m.reg.T(locale.KeyWarning), a11y.Assertive)
	}
	return m, nil
}

func (m *Model) openHelp() (tea.Model, tea.Cmd) {
	if m.helpView == "" {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(72))
		if err == nil {
			if out, err := r.Render(helpMarkdown); err == nil {
				m.helpView = out
			}
		}
		if m.helpView == "" {
			m.helpView = helpMarkdown
		}
	}
	m.helpOpen = true
	return m, nil
}

// openSettings shows the settings form. huh owns focus while it is open.
func (m *Model) openSettings() (tea.Model, tea.Cmd) {
	m.localeChoice = m.reg.Current()
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.reg.T(locale.KeySettings)).
				Options(huh.NewOptions(m.reg.Locales()...)...).
				Value(&m.localeChoice),
			huh.NewConfirm().
				Title("Reduce motion").
				Value(&m.reduceMotion),
		),
	)
	m.formOpen = true
	return m, m.form.Init()
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.formOpen = false
		m.reg.SetLocale(m.localeChoice)
		m.persistSettings()
		return m, teax.AnnounceCmd(m.announcer, m.reg.T(locale.KeyLoaded), a11y.Polite)
	case huh.StateAborted:
		m.formOpen = false
		return m, nil
	}
	return m, cmd
}

func (m *Model) persistSettings() {
	if m.store == nil {
		return
	}
	// Settings persistence is best effort; the demo keeps running either way.
	_ = m.store.SetLocale(m.localeChoice)
	_ = m.store.SetReduceMotion(m.reduceMotion)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(teax.Primary)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(teax.BorderNormal).Padding(1, 2)
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(teax.Primary).Padding(1, 2)
)

// View renders the demo.
func (m *Model) View() string {
	if m.helpOpen {
		return m.helpView
	}
	if m.formOpen && m.form != nil {
		return m.form.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("fokus demo"),
		"",
		m.name.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.save.View(), " ", m.delete.View(), "  ", m.docs.View()),
		"",
		teax.MutedText.Render("tab: move focus • d: dialog • s: settings • ?: help • q: quit"),
	)
	screen := panelStyle.Render(body)

	if m.dialog != nil {
		dlg := dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			a11y.DialogLabel(m.reg, ""),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, m.keep.View(), " ", m.drop.View()),
		))
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, dlg)
	}

	status := m.region.View()
	if status == "" {
		status = " "
	}
	return lipgloss.JoinVertical(lipgloss.Left, screen, status)
}

// Run starts the demo program on the current terminal.
func Run(reg *locale.Registry, store *prefs.Store) error {
	p := tea.NewProgram(New(reg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
