package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/stride/internal/auth"
	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/logging"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/tracker"
	"github.com/misterclayt0n/stride/internal/utils"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "stride",
	Short:         "CLI fitness tracker for strength and cardio workouts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.Stdout,
			LogLevel:      level,
			LogFormatJSON: cfg.Log.JSON,
		})
		return nil
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ~/.config/stride/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

func openStorage(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	return st, nil
}

// stateDir is where the draft session and the login token live.
func stateDir() (utils.StateDir, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return utils.StateDir(dir), nil
}

func newProvider(st *storage.Storage) (*auth.LocalProvider, error) {
	p, err := auth.NewLocalProvider(st, cfg.Auth)
	if errors.Is(err, auth.ErrNoSecret) {
		return nil, fmt.Errorf("%w (run `stride init` or set STRIDE_JWT_SECRET)", err)
	}
	return p, err
}

// currentUser resolves the logged in user from the stored token.
func currentUser(ctx context.Context, st *storage.Storage) (*auth.Identity, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	creds, err := dir.LoadCredentials()
	if err != nil {
		return nil, errors.New("Not logged in (run `stride login`)")
	}

	p, err := newProvider(st)
	if err != nil {
		return nil, err
	}
	id, err := p.Verify(ctx, creds.Token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, errors.New("Session expired or invalid (run `stride login`)")
		}
		return nil, err
	}
	return id, nil
}

// session opens the store and resolves the user, the preamble of every
// command that touches user data.
func session(ctx context.Context) (*storage.Storage, *auth.Identity, error) {
	st, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	id, err := currentUser(ctx, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, id, nil
}

func newService(st *storage.Storage) *tracker.Service {
	return tracker.NewService(st)
}
