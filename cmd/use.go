package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the interactive UI",
	Long:  `Switch to the specified profile and immediately start the interactive UI.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cfg.UseProfile(profileName); err != nil {
			return err
		}

		// Save config with new active profile
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		return runApplication(cfg)
	},
}
