package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gardar/phototable/pkg/phototable"
	"github.com/gardar/phototable/pkg/shell"
)

func newRunCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Assemble the documents without prompting",
		Long: `Run assembles the phototable from the configured source folder into the
configured output folder without asking any questions.

When the default "images" folder does not exist it is created, and the
command exits so the images can be copied into it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			source := c.settings.Source

			if err := phototable.CheckSource(source); errors.Is(err, phototable.ErrSourceMissing) && source == defaultSource {
				if err := os.MkdirAll(source, 0o755); err != nil {
					return fmt.Errorf("failed to create %s: %w", source, err)
				}
				fmt.Fprintf(out, "Created folder '%s'. Add images to it and run again.\n", source)
				return nil
			}

			summary, err := phototable.Assemble(cmd.Context(), source, c.settings.Output,
				c.settings.phototableConfig(c.logger), shell.NewProgress(out))
			if err != nil {
				return err
			}
			shell.PrintSummary(out, summary)
			return nil
		},
	}
}
