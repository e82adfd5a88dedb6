package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/stride/internal/metrics"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Workout calculators that need no account",
}

var calcPaceCmd = &cobra.Command{
	Use:   "pace [distance] [minutes]",
	Short: "Pace per distance unit as M:SS",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		fmt.Println(metrics.ComputePace(nums[0], nums[1]))
		return nil
	},
}

var calcDistanceCmd = &cobra.Command{
	Use:   "distance [speed] [minutes]",
	Short: "Distance covered at a speed for a duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", metrics.DistanceFromSpeed(nums[0], nums[1]))
		return nil
	},
}

var calcOneRMCmd = &cobra.Command{
	Use:   "one-rm [weight] [reps]",
	Short: "Estimated one-rep max (Epley)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps %q", args[1])
		}
		fmt.Printf("%.0f\n", metrics.EstimateOneRepMax(weight, reps))
		return nil
	},
}

var calcVolumeCmd = &cobra.Command{
	Use:   "volume [weight] [reps] [sets]",
	Short: "Training volume (weight × reps × sets)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps %q", args[1])
		}
		sets, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid sets %q", args[2])
		}
		fmt.Printf("%.1f\n", metrics.Volume(weight, reps, sets))
		return nil
	},
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	calcCmd.AddCommand(calcPaceCmd)
	calcCmd.AddCommand(calcDistanceCmd)
	calcCmd.AddCommand(calcOneRMCmd)
	calcCmd.AddCommand(calcVolumeCmd)
	rootCmd.AddCommand(calcCmd)
}
