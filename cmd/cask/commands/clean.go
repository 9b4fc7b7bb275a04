package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/adapters/detector"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Destroy the entire environment cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if !force && detector.Interactive() {
				ok, err := confirm(cmd, c.app.CacheRoot())
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			return c.app.Clean(cmd.Context())
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, root string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete all cached environments under %s? [y/N] ", root)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
