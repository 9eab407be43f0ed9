package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the registered targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := c.app.Targets(c.configPath)
			if err != nil {
				return err
			}

			width := 0
			for _, t := range targets {
				width = max(width, len(t.Alias))
			}

			out := cmd.OutOrStdout()
			s := c.styles(out)
			for _, t := range targets {
				_, _ = fmt.Fprintf(out, "%s  %s\n",
					s.Key.Width(width).Render(string(t.Alias)),
					s.Value.Render(t.Triple.String()),
				)
			}
			return nil
		},
	}
}
