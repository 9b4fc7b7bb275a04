package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/core/domain"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Pin the manifest's dependencies into a lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("config")
			return c.app.Lock(cmd.Context(), manifestPath)
		},
	}
	cmd.Flags().StringP("config", "c", domain.ManifestFileName, "Path to the project manifest")
	return cmd
}
