package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Run a payload inside the project's environment",
		Long: "Resolves the environment for the project manifest, building it on a " +
			"cache miss, and executes the given arguments with the environment's " +
			"interpreter. Arguments after -- are passed to the interpreter verbatim.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			manifestPath, _ := cmd.Flags().GetString("config")
			return c.app.Run(cmd.Context(), manifestPath, args)
		},
	}
	cmd.Flags().StringP("config", "c", domain.ManifestFileName, "Path to the project manifest")
	return cmd
}
