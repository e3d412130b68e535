package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	verbose bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "fokus",
	Short: "Terminal accessibility toolkit",
	Long: `fokus - focus trapping, screen-reader announcements, and localized
accessible labels for Bubble Tea terminal applications.

The library lives under pkg/; this CLI runs the demo program and manages
locale tables and persisted accessibility preferences.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})
	cobra.OnInitialize(initLogging)
}

// initLogging routes diagnostics to stderr so they never corrupt the TUI,
// at debug level when --verbose is set.
func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
