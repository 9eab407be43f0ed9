package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cross/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build for the given targets, or the local machine when none are given",
		Long: "Build for each named target in order. The special target \"all\" selects every\n" +
			"registered target. Unknown targets are skipped. Set BUILD_MODE=RELEASE for a release build.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), args, app.BuildOptions{ConfigPath: c.configPath})
		},
	}
}

func (c *CLI) newCleanBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-build [targets...]",
		Short: "Remove previous build artifacts, then build",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), args, app.BuildOptions{ConfigPath: c.configPath, Clean: true})
		},
	}
}

func (c *CLI) newBuildReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-release",
		Short: "Clean-build every target in release mode, then generate documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.BuildRelease(cmd.Context(), c.configPath)
		},
	}
}
