package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annika/fokus/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and update persisted accessibility preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPrefsStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			v, err := store.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		}

		all, err := store.All()
		if err != nil {
			return err
		}
		for k, v := range all {
			fmt.Printf("%s=%s\n", k, v)
		}
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPrefsStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Set(args[0], args[1])
	},
}

func openPrefsStore() (*prefs.Store, error) {
	dir, err := prefs.DefaultDir()
	if err != nil {
		return nil, err
	}
	return prefs.Open(dir)
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}
