package cmd

import (
	"fmt"

	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Log every entry of the current session and close it",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, state, err := loadDraft()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if state.UserID != id.UserID {
			return fmt.Errorf("The active session belongs to another account")
		}

		performed, date, err := tracker.SessionRegime(state)
		if err != nil {
			return err
		}

		results, err := newService(st).LogRegime(ctx, id.UserID, performed, date)
		if err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}
		for _, r := range results {
			printLogResult(r)
		}

		if err := dir.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		fmt.Printf("✅ Session saved successfully (%d workouts)\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
