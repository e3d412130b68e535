package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/annika/fokus/internal/demo"
	"github.com/annika/fokus/internal/env"
	"github.com/annika/fokus/pkg/locale"
	"github.com/annika/fokus/internal/prefs"
)

var demoLocale string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the accessibility demo program",
	Long: `Runs a small Bubble Tea program showing the toolkit in action:
tab-order focus movement, a dialog with focus trapping and restoration,
live-region announcements, and locale switching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !env.Interactive() {
			return fmt.Errorf("demo requires an interactive terminal")
		}

		reg := locale.NewRegistry()

		store := openPrefs()
		if store != nil {
			defer store.Close()
			if code, err := store.Locale(); err == nil && code != "" {
				reg.SetLocale(code)
			}
		}
		if demoLocale != "" {
			reg.SetLocale(demoLocale)
		}

		return demo.Run(reg, store)
	},
}

// openPrefs opens the preferences store, degrading to nil (no
// persistence) when it is unavailable.
func openPrefs() *prefs.Store {
	dir, err := prefs.DefaultDir()
	if err != nil {
		slog.Warn("prefs unavailable", "error", err)
		return nil
	}
	store, err := prefs.Open(dir)
	if err != nil {
		slog.Warn("prefs unavailable", "error", err)
		return nil
	}
	return store
}

func init() {
	demoCmd.Flags().StringVarP(&demoLocale, "locale", "l", "", "locale to start in (en, sv)")
	rootCmd.AddCommand(demoCmd)
}
