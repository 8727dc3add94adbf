package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stager/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the persisted run records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{All: all})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Also remove the virtual environment")
	return cmd
}
