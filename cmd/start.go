package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var (
	regimeName  string
	sessionDate string
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start a draft session from a regime",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := stateDir()
		if err != nil {
			return err
		}
		if dir.SessionExists() {
			return fmt.Errorf("A session is already active (end-session or cancel-session first)")
		}

		date, err := utils.ParseDate(sessionDate, time.Now(), cfg.Location())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, id, err := session(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		regime, err := st.GetRegimeByName(ctx, id.UserID, regimeName)
		if err != nil {
			return fmt.Errorf("Failed to load regime: %w", err)
		}

		state := newService(st).NewSession(id.UserID, regime, date)
		if err := dir.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Printf("✅ Started session %s (%s, %d entries)\n", state.SessionID, regime.Name, len(state.Entries))
		return nil
	},
}

// loadDraft returns the active draft session.
func loadDraft() (utils.StateDir, *models.SessionState, error) {
	dir, err := stateDir()
	if err != nil {
		return "", nil, err
	}
	if !dir.SessionExists() {
		return "", nil, fmt.Errorf("No active session")
	}
	state, err := dir.LoadSessionState()
	if err != nil {
		return "", nil, fmt.Errorf("Failed to load session: %w", err)
	}
	return dir, state, nil
}

// entryIndex parses a 1-based entry index into a slice index.
func entryIndex(arg string, n int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid entry index (should be 1-based)")
	}
	if idx > n {
		return 0, fmt.Errorf("Entry index out of range")
	}
	return idx - 1, nil
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&regimeName, "regime", "r", "", "Regime name")
	startCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "Date the workouts are logged under (default today)")
	startCmd.MarkFlagRequired("regime")
}
