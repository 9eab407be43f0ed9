package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), c.configPath)
		},
	}
}

func (c *CLI) newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: "Generate documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Doc(cmd.Context(), c.configPath)
		},
	}
}
