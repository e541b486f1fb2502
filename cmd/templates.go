package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/core"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"generators", "ls"},
	Short:   "List the templates offered by the generator service",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, logger := newClient(cfg)

		ctx, cancel := commandContext(cmd)
		defer cancel()

		state := core.NewFormState()
		controller := core.NewController(state, client, core.WithLogger(logger))
		if err := controller.LoadCatalog(ctx); err != nil {
			return fmt.Errorf("%s: %w", core.CatalogErrorMessage, err)
		}

		snap := state.Snapshot()
		if len(snap.Generators) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No templates available")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, gen := range snap.Generators {
			marker := " "
			if gen.Name == snap.SelectedTemplate {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %s\t%s\n", marker, gen.Name, gen.Description)
		}
		return w.Flush()
	},
}
