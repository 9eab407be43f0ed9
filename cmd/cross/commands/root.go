// Package commands implements the CLI commands for the cross build orchestrator.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cross/internal/adapters/detector"
	"go.trai.ch/cross/internal/app"
	"go.trai.ch/cross/internal/build"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/cross/internal/ui/output"
	"go.trai.ch/cross/internal/ui/style"
)

// CLI represents the command line interface for cross.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
	color      string
	colorMode  detector.ColorMode
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, selection []string, opts app.BuildOptions) error
	BuildRelease(ctx context.Context, configPath string) error
	Clean(ctx context.Context, configPath string) error
	Doc(ctx context.Context, configPath string) error
	Targets(configPath string) ([]domain.Target, error)
	Info(ctx context.Context, configPath string) (domain.Diagnostics, error)
	SetColorMode(mode detector.ColorMode)
}

// jsonSwitcher is implemented by loggers that support JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
// --json takes effect when logger implements SetJSON(bool).
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cross",
		Short:         "Cross-compile a project for a set of named targets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", domain.DefaultConfigFile, "Path to the project file")
	flags.BoolVar(&c.jsonLogs, "json", false, "Write logs as JSON")
	flags.StringVar(&c.color, "color", "auto", "Colour output: auto, always, or never")
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanBuildCmd())
	rootCmd.AddCommand(c.newBuildReleaseCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDocCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(_ *cobra.Command, _ []string) error {
	mode, err := detector.ParseColorMode(c.color)
	if err != nil {
		return err
	}
	c.colorMode = mode
	c.app.SetColorMode(mode)

	if js, ok := c.logger.(jsonSwitcher); ok && c.jsonLogs {
		js.SetJSON(true)
	}
	return nil
}

// styles returns the styles for output written to w.
func (c *CLI) styles(w io.Writer) style.Styles {
	f, _ := w.(*os.File)
	profile := detector.DetectEnvironment(f).Profile(c.colorMode)
	return style.New(output.Renderer(w, profile))
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
