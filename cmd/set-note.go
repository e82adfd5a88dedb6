package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [entry-index]",
	Short: "Set a note for an entry of the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, state, err := loadDraft()
		if err != nil {
			return err
		}

		idx, err := entryIndex(args[0], len(state.Entries))
		if err != nil {
			return err
		}
		state.Entries[idx].Notes = noteText

		if err := dir.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text to set for the entry")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
