package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var (
	logActivity string
	logDate     string
	logNote     string

	logWeight     float64
	logWeightUnit string
	logReps       int
	logSets       int

	logDistance float64
	logDuration float64
	logSpeed    float64
	logUnit     string
	logMethod   string
)

var logStrengthCmd = &cobra.Command{
	Use:   "log-strength",
	Short: "Log a strength workout and check it against your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := utils.ParseDate(logDate, time.Now(), cfg.Location())
		if err != nil {
			return err
		}

		return logWorkout(cmd, tracker.LogWorkoutInput{
			Activity:   logActivity,
			Category:   models.CategoryStrength,
			Weight:     logWeight,
			WeightUnit: models.WeightUnit(logWeightUnit),
			Reps:       logReps,
			Sets:       logSets,
			Date:       date,
			Notes:      logNote,
		})
	},
}

var logCardioCmd = &cobra.Command{
	Use:   "log-cardio",
	Short: "Log a cardio workout by distance or by speed",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := utils.ParseDate(logDate, time.Now(), cfg.Location())
		if err != nil {
			return err
		}

		method := models.LogMethod(logMethod)
		if method == "" && logSpeed > 0 && logDistance == 0 {
			method = models.LogMethodSpeed
		}

		return logWorkout(cmd, tracker.LogWorkoutInput{
			Activity:  logActivity,
			Category:  models.CategoryCardio,
			LogMethod: method,
			Distance:  logDistance,
			Duration:  logDuration,
			Speed:     logSpeed,
			Unit:      models.DistanceUnit(logUnit),
			Date:      date,
			Notes:     logNote,
		})
	},
}

func logWorkout(cmd *cobra.Command, in tracker.LogWorkoutInput) error {
	ctx := cmd.Context()
	st, id, err := session(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	in.UserID = id.UserID
	res, err := newService(st).LogWorkout(ctx, in)
	if err != nil {
		return fmt.Errorf("Failed to log workout: %w", err)
	}

	printLogResult(res)
	return nil
}

func printLogResult(res *tracker.LogResult) {
	w := res.Workout
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Printf("✅ Logged %s on %s\n", w.Activity, utils.FormatDate(w.Date))
	if w.IsStrength() {
		fmt.Printf("   %s: %.1f%s × %d × %d\n", cyan("Load"), w.Weight, w.WeightUnit, w.Reps, w.Sets)
		fmt.Printf("   %s: %.1f%s\n", cyan("Estimated 1RM"), res.OneRepMax, w.WeightUnit)
		fmt.Printf("   %s: %.1f%s\n", cyan("Volume"), res.Volume, w.WeightUnit)
	} else {
		fmt.Printf("   %s: %.2f%s in %s\n", cyan("Distance"), w.Distance, w.Unit, utils.FormatMinutes(w.Duration))
		fmt.Printf("   %s: %s /%s\n", cyan("Pace"), res.Pace, w.Unit)
		if w.Speed > 0 {
			fmt.Printf("   %s: %.1f %s/h\n", cyan("Speed"), w.Speed, w.Unit)
		}
	}

	for _, g := range res.MetGoals {
		fmt.Printf("%s %s\n", green("🎯 Goal met:"), describeGoal(g))
	}
}

func init() {
	for _, c := range []*cobra.Command{logStrengthCmd, logCardioCmd} {
		c.Flags().StringVarP(&logActivity, "activity", "a", "", "Activity name (e.g. \"Bench Press\", \"Run\")")
		c.Flags().StringVarP(&logDate, "date", "d", "", "Date of the workout (YYYY-MM-DD, DD/MM/YY, today, yesterday)")
		c.Flags().StringVarP(&logNote, "note", "n", "", "Free-form note")
		c.MarkFlagRequired("activity")
	}

	logStrengthCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "Weight lifted (0 for bodyweight)")
	logStrengthCmd.Flags().StringVar(&logWeightUnit, "weight-unit", "kg", "Weight unit (kg or lb)")
	logStrengthCmd.Flags().IntVarP(&logReps, "reps", "r", 0, "Reps per set")
	logStrengthCmd.Flags().IntVarP(&logSets, "sets", "s", 1, "Number of sets")
	logStrengthCmd.MarkFlagRequired("reps")

	logCardioCmd.Flags().Float64Var(&logDistance, "distance", 0, "Distance covered")
	logCardioCmd.Flags().Float64VarP(&logDuration, "duration", "t", 0, "Duration in minutes")
	logCardioCmd.Flags().Float64Var(&logSpeed, "speed", 0, "Average speed (unit per hour)")
	logCardioCmd.Flags().StringVarP(&logUnit, "unit", "u", "km", "Distance unit (km or mi)")
	logCardioCmd.Flags().StringVarP(&logMethod, "method", "m", "", "Log method (distance or speed)")
	logCardioCmd.MarkFlagRequired("duration")

	rootCmd.AddCommand(logStrengthCmd)
	rootCmd.AddCommand(logCardioCmd)
}
