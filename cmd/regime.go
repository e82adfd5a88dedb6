package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var createRegimeCmd = &cobra.Command{
	Use:   "create-regime [file]",
	Short: "Create a new regime from a TOML or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := utils.ParseRegimeFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read regime: %w", err)
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		regime, err := newService(st).BuildRegime(id.UserID, file)
		if err != nil {
			return fmt.Errorf("invalid regime: %w", err)
		}

		if err := st.CreateRegime(ctx, regime); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("Regime '%s' already exists, use update-regime", regime.Name)
			}
			return fmt.Errorf("failed to create regime: %w", err)
		}

		fmt.Printf("✅ Regime '%s' created with %d entries\n", regime.Name, len(regime.Entries))
		return nil
	},
}

var listRegimesCmd = &cobra.Command{
	Use:   "list-regimes",
	Short: "List all regimes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		regimes, err := st.ListRegimes(ctx, id.UserID)
		if err != nil {
			return err
		}
		if len(regimes) == 0 {
			fmt.Println(color.New(color.FgMagenta).Sprint("No regimes yet. Create one with `stride create-regime`."))
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		for _, r := range regimes {
			fmt.Printf("%s - %d entries", green(r.Name), r.Entries)
			if r.Description != "" {
				fmt.Printf(" - %s", r.Description)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createRegimeCmd)
	rootCmd.AddCommand(listRegimesCmd)
}
