package cmd

import (
	"fmt"
	"os"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/annika/fokus/pkg/locale"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Inspect and validate locale message tables",
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in locales and their required keys",
	Run: func(cmd *cobra.Command, args []string) {
		reg := locale.NewRegistry()
		fmt.Println("locales:")
		for _, code := range reg.Locales() {
			fmt.Printf("  %s\n", code)
		}
		fmt.Printf("required keys (%d):\n", len(locale.RequiredKeys))
		for _, k := range locale.RequiredKeys {
			fmt.Printf("  %s\n", k)
		}
	},
}

var localeCheckCmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Validate a custom locale table file",
	Long: `Parses a JSON message table and reports missing required keys.
Unknown keys are reported with a "did you mean" suggestion when they look
like a misspelled required key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read table: %w", err)
		}

		table, parseErr := locale.ParseTable(data)
		if parseErr != nil {
			// Re-parse leniently so unknown-key suggestions still work
			// on incomplete tables.
			fmt.Printf("invalid: %v\n", parseErr)
		} else {
			fmt.Println("ok: all required keys present")
		}
		reportUnknownKeys(data, table)
		if parseErr != nil {
			os.Exit(1)
		}
		return nil
	},
}

// reportUnknownKeys flags keys outside the required set, suggesting the
// closest required key for likely misspellings.
func reportUnknownKeys(data []byte, table locale.Table) {
	known := make(map[locale.Key]bool, len(locale.RequiredKeys))
	required := make([]string, len(locale.RequiredKeys))
	for i, k := range locale.RequiredKeys {
		known[k] = true
		required[i] = string(k)
	}

	if table == nil {
		var err error
		table, err = locale.ParseTableLenient(data)
		if err != nil {
			return
		}
	}

	for k := range table {
		if known[k] {
			continue
		}
		matches := fuzzy.Find(string(k), required)
		if len(matches) > 0 {
			fmt.Printf("unknown key %q (did you mean %q?)\n", k, matches[0].Str)
		} else {
			fmt.Printf("unknown key %q\n", k)
		}
	}
}

func init() {
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeCheckCmd)
	rootCmd.AddCommand(localeCmd)
}
