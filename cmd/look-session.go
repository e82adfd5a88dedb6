package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/spf13/cobra"
)

var lookSessionCmd = &cobra.Command{
	Use:   "look-session",
	Short: "Show the current draft session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadDraft()
		if err != nil {
			return err
		}

		duration := time.Since(state.StartTime).Round(time.Second)

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint, color.CrossedOut).SprintFunc()

		fmt.Printf("%s\n", green(state.RegimeName))
		fmt.Printf("\n%s %s\n", red("Session:"), state.SessionID)
		fmt.Printf("%s %s\n", cyan("Date:"), state.Date)
		fmt.Printf("%s %s\n\n", red("Duration:"), duration)

		for i, e := range state.Entries {
			entry := sessionEntryToRegime(e)
			line := fmt.Sprintf("%s %s", e.Activity, describeEntry(entry))
			if e.Skipped {
				fmt.Printf("%s %s %s\n", cyan(fmt.Sprintf("%d.", i+1)), faint(line), "(skipped)")
			} else {
				fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(line))
			}
			if e.Notes != "" {
				fmt.Printf("   %s %s\n", cyan("Note:"), e.Notes)
			}
		}
		return nil
	},
}

func sessionEntryToRegime(e models.SessionEntry) models.RegimeEntry {
	return models.RegimeEntry{
		Activity:   e.Activity,
		Category:   models.Category(e.Category),
		LogMethod:  models.LogMethod(e.LogMethod),
		Weight:     e.Weight,
		WeightUnit: models.WeightUnit(e.WeightUnit),
		Reps:       e.Reps,
		Sets:       e.Sets,
		Distance:   e.Distance,
		Duration:   e.Duration,
		Unit:       models.DistanceUnit(e.Unit),
		Speed:      e.Speed,
		Notes:      e.Notes,
	}
}

func init() {
	rootCmd.AddCommand(lookSessionCmd)
}
