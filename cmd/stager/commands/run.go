package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stager/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Provision the virtual environment, then forward args to the project build tool",
		Long: "Provision the Python virtual environment and package manager, skipping the " +
			"work when the recorded manifest hashes still match. Extra arguments are " +
			"forwarded to the configured build tool inside the environment.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{Args: args})
		},
	}
}
