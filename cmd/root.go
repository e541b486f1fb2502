package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/api"
	"github.com/Rorical/RoriGen/internal/app"
	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/logging"
)

var profileOverride string

var rootCmd = &cobra.Command{
	Use:   "rorigen",
	Short: "Generate code from JSON with a remote generator service",
	Long: `RoriGen is a terminal client for a code generation service.

Pick a template, paste JSON and get Go structs, TypeScript interfaces and
more back from the service. Running without a subcommand opens the
interactive UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runApplication(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileOverride, "profile", "p", "", "Use this profile for one run without switching")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(healthCmd)
}

// loadConfig loads the config and applies --profile
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if profileOverride != "" {
		if err := cfg.OverrideProfile(profileOverride); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runApplication(cfg *config.Config) error {
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

// newClient builds the transport and a stderr logger for one-shot commands
func newClient(cfg *config.Config) (*api.Client, zerolog.Logger) {
	logger := logging.NewConsole(os.Stderr, cfg.LogLevel)
	return api.NewClient(cfg.GetBaseURL(), cfg.GetTimeout(), api.WithLogger(logger)), logger
}

// commandContext is cancelled on Ctrl+C
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}
