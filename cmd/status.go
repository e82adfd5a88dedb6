package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show totals: volume lifted, distance covered, cardio time, goals met, week streak and personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := newService(st).Summary(ctx, id.UserID)
		if err != nil {
			return fmt.Errorf("failed to summarize workouts: %w", err)
		}

		printBoxedHeader("STATUS")

		printMetric("Total workouts", s.TotalWorkouts)
		printMetric("Total volume lifted", fmt.Sprintf("%.1f kg", s.StrengthVolume))
		printMetric("Total distance", fmt.Sprintf("%.2f km", s.CardioDistance))
		printMetric("Total cardio time", utils.FormatMinutes(s.CardioMinutes))
		printMetric("Goals met", s.GoalsMet)
		printMetric("Week streak", fmt.Sprintf("%d weeks", s.WeekStreak))
		fmt.Println()

		if len(s.PersonalRecords) > 0 {
			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Personal records:"))
			magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
			for _, pr := range s.PersonalRecords {
				value := fmt.Sprintf("%.1f (est. 1RM)", pr.Value)
				if pr.Category == models.CategoryCardio {
					value = fmt.Sprintf("%.2f (longest)", pr.Value)
				}
				fmt.Printf("  • %s: %s on %s, %d workouts\n", magenta(pr.Activity), value, utils.FormatDate(pr.Date), s.ActivityCounts[pr.Activity])
			}
			fmt.Println()
		}

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
