package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new project in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return c.app.Init(dir, name)
		},
	}
	cmd.Flags().StringP("name", "n", "", "Project name (defaults to the directory name)")
	return cmd
}
