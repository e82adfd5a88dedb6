package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/spf13/cobra"
)

// details is a flag to enable per-day workout details.
var details bool

var categoryColors = map[string]*color.Color{
	string(models.CategoryStrength): color.New(color.FgRed),
	string(models.CategoryCardio):   color.New(color.FgBlue),
	"both":                          color.New(color.FgMagenta),
}

// calendarCmd prints the calendar grid. Training days are colored by the
// kind of workouts logged that day and a legend is printed below.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days colored by workout category",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now().In(cfg.Location())
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		// Workout dates are calendar days stored at UTC midnight.
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := st.ListWorkoutsBetween(ctx, id.UserID, firstOfMonth, lastOfMonth)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}

		byDay := make(map[int][]models.Workout)
		for _, w := range workouts {
			byDay[w.Date.Day()] = append(byDay[w.Date.Day()], w)
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if ws, ok := byDay[day]; ok {
				dayStr = categoryColors[dayKind(ws)].Sprint(dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for _, kind := range []string{string(models.CategoryStrength), string(models.CategoryCardio), "both"} {
			fmt.Printf("  %s: %s\n", categoryColors[kind].Sprint("██"), kind)
		}

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				counts := make(map[string]int)
				for _, w := range byDay[day] {
					counts[w.Activity]++
				}
				for _, activity := range sortedKeys(counts) {
					fmt.Printf("  %s × %d\n", activity, counts[activity])
				}
			}
		}

		return nil
	},
}

func dayKind(ws []models.Workout) string {
	var strength, cardio bool
	for _, w := range ws {
		if w.IsStrength() {
			strength = true
		} else {
			cardio = true
		}
	}
	switch {
	case strength && cardio:
		return "both"
	case strength:
		return string(models.CategoryStrength)
	default:
		return string(models.CategoryCardio)
	}
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print the activities of each training day")
}
