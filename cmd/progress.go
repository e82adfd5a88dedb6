package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/stride/internal/progress"
	"github.com/spf13/cobra"
)

const chartWidth = 40

var (
	progressMetric string
	progressLimit  int
)

var progressCmd = &cobra.Command{
	Use:   "progress [activity]",
	Short: "Chart the progression of an activity (one-rep-max, volume, pace, ...)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		points, metric, err := newService(st).Progress(ctx, id.UserID, args[0], progressMetric)
		if err != nil {
			return err
		}
		if progressLimit > 0 && len(points) > progressLimit {
			points = points[len(points)-progressLimit:]
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Printf("%s %s (%s)\n\n", boldGreen("Progress for"), args[0], metric)
		for _, line := range renderChart(points, metric) {
			fmt.Println(line)
		}

		if best, ok := progress.Best(points, metric); ok {
			fmt.Printf("\n%s %s on %s\n", boldGreen("Best:"), formatMetric(best.Value, metric), best.Date.Format("2006-01-02"))
		}
		return nil
	},
}

// renderChart draws one horizontal bar per point, scaled to the largest value.
func renderChart(points []progress.Point, metric progress.Metric) []string {
	var max float64
	for _, p := range points {
		max = math.Max(max, p.Value)
	}

	bar := color.New(color.FgCyan).SprintFunc()
	lines := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if max > 0 {
			n = int(math.Round(p.Value / max * chartWidth))
		}
		lines = append(lines, fmt.Sprintf("%s │%s %s",
			p.Date.Format("2006-01-02"),
			bar(strings.Repeat("█", n)),
			formatMetric(p.Value, metric),
		))
	}
	return lines
}

func formatMetric(v float64, metric progress.Metric) string {
	switch metric {
	case progress.MetricPace:
		secs := int(math.Round(v))
		return fmt.Sprintf("%d:%02d /unit", secs/60, secs%60)
	case progress.MetricReps:
		return fmt.Sprintf("%.0f reps", v)
	case progress.MetricDuration:
		return fmt.Sprintf("%.0f min", v)
	case progress.MetricDistance:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVarP(&progressMetric, "metric", "m", "", "Metric to chart (default: one-rep-max or distance)")
	progressCmd.Flags().IntVarP(&progressLimit, "limit", "l", 0, "Only the most recent N days")
}
