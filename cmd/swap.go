package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var swapCmd = &cobra.Command{
	Use:   "swap [entry-index] [new-activity]",
	Short: "Swap the activity of an entry in the current session, keeping its targets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, state, err := loadDraft()
		if err != nil {
			return err
		}

		idx, err := entryIndex(args[0], len(state.Entries))
		if err != nil {
			return err
		}

		activity := strings.TrimSpace(args[1])
		if activity == "" {
			return fmt.Errorf("New activity name is empty")
		}
		old := state.Entries[idx].Activity
		state.Entries[idx].Activity = activity

		if err := dir.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Printf("✅ Swapped %s for %s\n", old, activity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapCmd)
}
