package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timepick/internal/app"
	"timepick/internal/config"
	"timepick/internal/logging"
)

var (
	configPath string
	home       string
	sessionID  string
	backend    string
	redisURL   string
	locale     string
	logLevel   string

	appCtx *app.Wire
)

func Execute() error {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	appCtx = nil
	root := &cobra.Command{
		Use:           "timepick",
		Short:         "Pick a time of day that sticks for the session",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			appCtx, err = app.NewWire(cmd.Context(), *cfg, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.timepick)")
	root.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "session id (default: the invoking shell)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "session storage: memory, file or redis")
	root.PersistentFlags().StringVar(&redisURL, "redis", "", "redis URL (e.g. redis://127.0.0.1:6379/0)")
	root.PersistentFlags().StringVar(&locale, "locale", "", "locale for formatting (e.g. en-US)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(showCmd(), setCmd(), stepCmd("up"), stepCmd("down"), editCmd(), sessionCmd())
	return root
}

// skipWiring replaces the root's PersistentPreRunE on commands that touch
// no session storage.
func skipWiring(*cobra.Command, []string) error { return nil }

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("session") {
		cfg.Session = sessionID
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("redis") {
		cfg.RedisURL = redisURL
	}
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}
