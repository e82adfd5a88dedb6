package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var showRegimeCmd = &cobra.Command{
	Use:   "show-regime [name]",
	Short: "Display every entry of a regime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		regime, err := st.GetRegimeByName(ctx, id.UserID, args[0])
		if err != nil {
			return fmt.Errorf("failed to load regime: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(regime.Name)))
		if regime.Description != "" {
			fmt.Printf("%s: %s\n", cyan("Description"), regime.Description)
		}
		fmt.Printf("%s: %s\n", cyan("Created At"), utils.FormatLocal(regime.CreatedAt, cfg.Location()))
		fmt.Println(strings.Repeat("=", 60))

		for i, e := range regime.Entries {
			fmt.Printf("%d. %s\n", i+1, e.Activity)
			fmt.Printf("   %s: %s\n", cyan("Target"), describeEntry(e))
			if e.Notes != "" {
				fmt.Printf("   %s: %s\n", cyan("Notes"), e.Notes)
			}
		}
		fmt.Println()
		return nil
	},
}

func describeEntry(e models.RegimeEntry) string {
	if e.Category == models.CategoryStrength {
		unit := e.WeightUnit
		if unit == "" {
			unit = models.UnitKilograms
		}
		sets := e.Sets
		if sets == 0 {
			sets = 1
		}
		if e.Weight == 0 {
			return fmt.Sprintf("%d × %d (bodyweight)", sets, e.Reps)
		}
		return fmt.Sprintf("%d × %d @ %.1f%s", sets, e.Reps, e.Weight, unit)
	}

	unit := e.Unit
	if unit == "" {
		unit = models.UnitKilometres
	}
	if e.LogMethod == models.LogMethodSpeed {
		return fmt.Sprintf("%.1f %s/h for %s", e.Speed, unit, utils.FormatMinutes(e.Duration))
	}
	return fmt.Sprintf("%.2f%s in %s", e.Distance, unit, utils.FormatMinutes(e.Duration))
}

func init() {
	rootCmd.AddCommand(showRegimeCmd)
}
