package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterActivity string
	filterCategory string
	filterFrom     string
	filterTo       string
	filterLimit    int
)

// historyCmd shows logged workouts grouped by day, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display logged workouts, optionally filtered by activity, category and date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := storage.WorkoutFilter{Activity: filterActivity, Limit: filterLimit}
		if filterCategory != "" {
			c, err := models.ParseCategory(filterCategory)
			if err != nil {
				return err
			}
			f.Category = c
		}

		var err error
		now := time.Now()
		if filterFrom != "" {
			if f.From, err = utils.ParseDate(filterFrom, now, cfg.Location()); err != nil {
				return fmt.Errorf("failed to parse --from: %w", err)
			}
		}
		if filterTo != "" {
			if f.To, err = utils.ParseDate(filterTo, now, cfg.Location()); err != nil {
				return fmt.Errorf("failed to parse --to: %w", err)
			}
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := newService(st).ListWorkouts(ctx, id.UserID, f)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println(color.New(color.FgMagenta).Sprint("No workouts found."))
			return nil
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		star := color.New(color.FgGreen).Sprint("★")

		var lastDay string
		for _, w := range workouts {
			day := utils.FormatDate(w.Date)
			if day != lastDay {
				if lastDay != "" {
					fmt.Println()
				}
				fmt.Println(boldGreen(w.Date.Format("Mon, 02 Jan 2006")))
				lastDay = day
			}

			mark := " "
			if w.GoalMet {
				mark = star
			}
			entry := describeEntry(models.RegimeEntry{
				Category:   w.Category,
				LogMethod:  w.LogMethod,
				Weight:     w.Weight,
				WeightUnit: w.WeightUnit,
				Reps:       w.Reps,
				Sets:       w.Sets,
				Distance:   w.Distance,
				Duration:   w.Duration,
				Unit:       w.Unit,
				Speed:      w.Speed,
			})
			fmt.Printf("  %s %-20s %s\n", mark, yellow(w.Activity), entry)
			if w.Notes != "" {
				fmt.Printf("      %s\n", w.Notes)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterActivity, "activity", "a", "", "Filter by activity (exact name)")
	historyCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Filter by category (strength or cardio)")
	historyCmd.Flags().StringVar(&filterFrom, "from", "", "First day to include (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().StringVar(&filterTo, "to", "", "Last day to include")
	historyCmd.Flags().IntVarP(&filterLimit, "limit", "l", 0, "Maximum number of workouts to show")
}
