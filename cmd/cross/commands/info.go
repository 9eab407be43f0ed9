package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print diagnostic information for bug reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diag, err := c.app.Info(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}

			rows := []struct{ key, value string }{
				{"version", diag.Version},
				{"commit", diag.Commit},
				{"os", diag.OS},
				{"arch", diag.Arch},
				{"revision", diag.Revision},
				{"branch", diag.Branch},
				{"compiler", diag.CompilerVersion},
			}

			out := cmd.OutOrStdout()
			s := c.styles(out)
			for _, row := range rows {
				_, _ = fmt.Fprintf(out, "%s %s\n",
					s.Key.Width(9).Render(row.key+":"),
					s.Value.Render(row.value),
				)
			}
			return nil
		},
	}
}
