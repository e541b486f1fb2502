package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the generator service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, _ := newClient(cfg)

		ctx, cancel := commandContext(cmd)
		defer cancel()

		health, err := client.CheckHealth(ctx)
		if err != nil {
			return fmt.Errorf("generator service at %s is unhealthy: %w", client.BaseURL(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Service: %s\n", health.Service)
		fmt.Fprintf(cmd.OutOrStdout(), "Status:  %s\n", health.Status)
		fmt.Fprintf(cmd.OutOrStdout(), "URL:     %s\n", client.BaseURL())
		return nil
	},
}
