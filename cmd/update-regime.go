package cmd

import (
	"fmt"

	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var updateRegimeCmd = &cobra.Command{
	Use:   "update-regime [file]",
	Short: "Replace the entries of an existing regime without touching logged workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := utils.ParseRegimeFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read regime: %w", err)
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		regime, err := newService(st).BuildRegime(id.UserID, file)
		if err != nil {
			return fmt.Errorf("Invalid regime: %w", err)
		}

		if err := st.UpdateRegime(ctx, regime); err != nil {
			return fmt.Errorf("Failed to update regime: %w", err)
		}

		fmt.Printf("✅ Regime '%s' updated successfully\n", regime.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateRegimeCmd)
}
