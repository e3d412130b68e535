package teax

import "github.com/charmbracelet/lipgloss"

// Colors shared by the teax components and the demo.
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Warning      = lipgloss.Color("214")
	Info         = lipgloss.Color("45")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
)

// Widget styles.
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	LinkStyle = lipgloss.NewStyle().
			Foreground(Info).
			Underline(true)

	LinkFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Info).
				Underline(true)

	MutedText = lipgloss.NewStyle().Foreground(Muted)
)

// Live-region styles, one per announcement priority.
var (
	PoliteStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	AssertiveStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)
