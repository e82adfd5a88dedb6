package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/spf13/cobra"
)

var deleteRegimeCmd = &cobra.Command{
	Use:   "delete-regime [name]",
	Short: "Delete a regime by name (logged workouts are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteRegimeByName(ctx, id.UserID, args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("Regime '%s' not found", args[0])
			}
			return fmt.Errorf("Failed to delete regime: %w", err)
		}

		fmt.Printf("✅ Regime '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteRegimeCmd)
}
