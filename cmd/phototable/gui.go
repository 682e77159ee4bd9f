package main

import (
	"github.com/spf13/cobra"

	"github.com/gardar/phototable/pkg/gui"
)

func newGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(gui.Options{
				Config: c.settings.phototableConfig(c.logger),
				Source: c.settings.Source,
				Output: c.settings.Output,
			})
		},
	}
}
