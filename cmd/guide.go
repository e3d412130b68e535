package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/annika/fokus/internal/env"
)

const guideMarkdown = `# Making a terminal app accessible with fokus

## Focus management

Put your focusable widgets in a ` + "`teax.Group`" + ` and forward key
messages to it; Tab and Shift+Tab then move focus in widget order,
skipping disabled widgets and static text. Widgets join or leave the tab
order via the same rules a browser applies: an explicit tab index wins,
disabled always loses, interactive kinds are focusable by default.

## Dialogs

Wrap dialog open/close in a ` + "`teax.FocusScope`" + `. Opening saves the
focus position and traps Tab cycling inside the dialog; closing releases
the trap and puts focus back where it was. Never leave a trap unreleased.

## Announcements

Post state changes to a ` + "`teax.LiveRegion`" + ` through an
` + "`a11y.Announcer`" + `. Use the polite priority for routine updates and
assertive only for things the user must hear immediately. Announcements
expire on their own after one second.

## Localization

Label builders read from a ` + "`locale.Registry`" + `. English and Swedish
are built in; register additional tables with the full key set, or load
them asynchronously. Unknown locales fall back to English rather than
failing.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the accessibility guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !env.Interactive() || env.NoColor() {
			fmt.Print(guideMarkdown)
			return nil
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			fmt.Print(guideMarkdown)
			return nil
		}
		out, err := r.Render(guideMarkdown)
		if err != nil {
			fmt.Print(guideMarkdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
