package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	goalActivity string
	goalCategory string
	goalMethod   string
	goalDistance float64
	goalTime     float64
	goalSpeed    float64
	goalUnit     string
	goalLoad     float64
	goalReps     int
	goalFilter   string
)

var addGoalCmd = &cobra.Command{
	Use:   "add-goal",
	Short: "Create a goal for an activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		g, err := newService(st).AddGoal(ctx, tracker.GoalInput{
			UserID:    id.UserID,
			Activity:  goalActivity,
			Category:  models.Category(goalCategory),
			LogMethod: models.LogMethod(goalMethod),
			DistGoal:  goalDistance,
			TimeGoal:  goalTime,
			SpeedGoal: goalSpeed,
			Unit:      models.DistanceUnit(goalUnit),
			LoadGoal:  goalLoad,
			RepsGoal:  goalReps,
		})
		if err != nil {
			return fmt.Errorf("Failed to create goal: %w", err)
		}

		fmt.Printf("✅ Created goal %s: %s\n", g.ID, describeGoal(*g))
		return nil
	},
}

var importGoalsCmd = &cobra.Command{
	Use:   "import-goals [file]",
	Short: "Import goals from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var importData models.GoalImport
		md, err := toml.Decode(string(data), &importData)
		if err != nil {
			return fmt.Errorf("invalid TOML format: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys in goals file: %v", undecoded)
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		goals, err := newService(st).ImportGoals(ctx, id.UserID, importData)
		if err != nil {
			return fmt.Errorf("failed to import goals: %w", err)
		}

		fmt.Printf("✅ Imported %d goals\n", len(goals))
		return nil
	},
}

var listGoalsCmd = &cobra.Command{
	Use:   "list-goals",
	Short: "List your goals, optionally for one activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		goals, err := st.ListGoals(ctx, id.UserID, goalFilter, "")
		if err != nil {
			return err
		}
		if len(goals) == 0 {
			fmt.Println(color.New(color.FgMagenta).Sprint("No goals yet. Create one with `stride add-goal`."))
			return nil
		}

		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
		for _, g := range goals {
			fmt.Printf("%s  %s\n", yellow(g.ID), describeGoal(g))
		}
		return nil
	},
}

var deleteGoalCmd = &cobra.Command{
	Use:   "delete-goal [goal-id]",
	Short: "Delete one of your goals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteGoal(ctx, id.UserID, args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("No goal with id %s", args[0])
			}
			return fmt.Errorf("Failed to delete goal: %w", err)
		}

		fmt.Printf("✅ Goal %s deleted\n", args[0])
		return nil
	},
}

func describeGoal(g models.Goal) string {
	var parts []string
	if g.Category == models.CategoryStrength {
		if g.LoadGoal > 0 {
			parts = append(parts, fmt.Sprintf("%.1fkg", g.LoadGoal))
		}
		if g.RepsGoal > 0 {
			parts = append(parts, fmt.Sprintf("%d reps", g.RepsGoal))
		}
		return fmt.Sprintf("%s: %s", g.Activity, strings.Join(parts, " × "))
	}

	if g.LogMethod == models.LogMethodSpeed {
		parts = append(parts, fmt.Sprintf("≥ %.1f %s/h", g.SpeedGoal, g.Unit))
		if g.TimeGoal > 0 {
			parts = append(parts, fmt.Sprintf("for at least %.0f min", g.TimeGoal))
		}
	} else {
		parts = append(parts, fmt.Sprintf("%.2f%s", g.DistGoal, g.Unit))
		parts = append(parts, fmt.Sprintf("within %.0f min", g.TimeGoal))
	}
	return fmt.Sprintf("%s: %s", g.Activity, strings.Join(parts, " "))
}

func init() {
	addGoalCmd.Flags().StringVarP(&goalActivity, "activity", "a", "", "Activity name")
	addGoalCmd.Flags().StringVarP(&goalCategory, "category", "c", "", "strength or cardio")
	addGoalCmd.Flags().StringVarP(&goalMethod, "method", "m", "", "Cardio goal method (distance or speed)")
	addGoalCmd.Flags().Float64Var(&goalDistance, "distance", 0, "Distance to cover (cardio, distance method)")
	addGoalCmd.Flags().Float64Var(&goalTime, "time", 0, "Minutes: upper bound for distance goals (required), minimum for speed goals")
	addGoalCmd.Flags().Float64Var(&goalSpeed, "speed", 0, "Speed to hold (cardio, speed method)")
	addGoalCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "Distance unit (km or mi)")
	addGoalCmd.Flags().Float64VarP(&goalLoad, "load", "w", 0, "Weight to lift (strength)")
	addGoalCmd.Flags().IntVarP(&goalReps, "reps", "r", 0, "Reps to reach (strength)")
	addGoalCmd.MarkFlagRequired("activity")
	addGoalCmd.MarkFlagRequired("category")

	listGoalsCmd.Flags().StringVarP(&goalFilter, "activity", "a", "", "Only goals for this activity")

	rootCmd.AddCommand(addGoalCmd)
	rootCmd.AddCommand(importGoalsCmd)
	rootCmd.AddCommand(listGoalsCmd)
	rootCmd.AddCommand(deleteGoalCmd)
}
