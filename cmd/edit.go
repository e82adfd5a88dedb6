package cmd

import (
	"fmt"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/spf13/cobra"
)

var (
	editWeight   float64
	editReps     int
	editSets     int
	editDistance float64
	editDuration float64
	editSpeed    float64
	editSkip     bool
)

var editCmd = &cobra.Command{
	Use:   "edit [entry-index]",
	Short: "Edit what was actually done for an entry of the current session",
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
		e := &state.Entries[idx]

		flags := cmd.Flags()
		if models.Category(e.Category) == models.CategoryStrength {
			if flags.Changed("distance") || flags.Changed("duration") || flags.Changed("speed") {
				return fmt.Errorf("%s is a strength entry", e.Activity)
			}
		} else if flags.Changed("weight") || flags.Changed("reps") || flags.Changed("sets") {
			return fmt.Errorf("%s is a cardio entry", e.Activity)
		}

		if flags.Changed("weight") {
			e.Weight = editWeight
		}
		if flags.Changed("reps") {
			e.Reps = editReps
		}
		if flags.Changed("sets") {
			e.Sets = editSets
		}
		if flags.Changed("distance") {
			e.Distance = editDistance
		}
		if flags.Changed("duration") {
			e.Duration = editDuration
		}
		if flags.Changed("speed") {
			e.Speed = editSpeed
		}
		if flags.Changed("skip") {
			e.Skipped = editSkip
		}

		if err := dir.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Entry updated successfully")
		return nil
	},
}

func init() {
	editCmd.Flags().Float64VarP(&editWeight, "weight", "w", 0, "Weight used")
	editCmd.Flags().IntVarP(&editReps, "reps", "r", 0, "Reps performed")
	editCmd.Flags().IntVarP(&editSets, "sets", "s", 0, "Sets performed")
	editCmd.Flags().Float64Var(&editDistance, "distance", 0, "Distance covered")
	editCmd.Flags().Float64VarP(&editDuration, "duration", "t", 0, "Duration in minutes")
	editCmd.Flags().Float64Var(&editSpeed, "speed", 0, "Average speed")
	editCmd.Flags().BoolVar(&editSkip, "skip", false, "Skip this entry (--skip=false to restore it)")

	rootCmd.AddCommand(editCmd)
}
