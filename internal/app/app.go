// Package app implements the application layer for cross.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/cross/internal/adapters/detector"
	"go.trai.ch/cross/internal/adapters/linear"
	"go.trai.ch/cross/internal/adapters/telemetry"
	"go.trai.ch/cross/internal/adapters/toolchain"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/cross/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	vcs          ports.VersionControl

	lookupEnv   domain.LookupFunc
	stdout      io.Writer
	stderr      io.Writer
	colorMode   detector.ColorMode
	newReporter func(w io.Writer) ports.Reporter
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	vcs ports.VersionControl,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		vcs:          vcs,
		lookupEnv:    os.LookupEnv,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithLookupEnv replaces the environment lookup used for mode selection.
func (a *App) WithLookupEnv(fn domain.LookupFunc) *App {
	a.lookupEnv = fn
	return a
}

// WithOutput redirects the output of external commands and the reporter.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// SetColorMode sets the colour preference of the default reporter.
func (a *App) SetColorMode(mode detector.ColorMode) {
	a.colorMode = mode
}

// WithReporter replaces the reporter constructor.
func (a *App) WithReporter(fn func(w io.Writer) ports.Reporter) *App {
	a.newReporter = fn
	return a
}

func (a *App) reporter() ports.Reporter {
	if a.newReporter != nil {
		return a.newReporter(a.stderr)
	}
	f, _ := a.stderr.(*os.File)
	profile := detector.DetectEnvironment(f).Profile(a.colorMode)
	return linear.NewReporter(a.stderr, profile)
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigFile
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ConfigPath is the project file. Empty means cross.yaml.
	ConfigPath string
	// Clean removes previous artifacts before building.
	Clean bool
	// Release forces Release mode regardless of the environment.
	Release bool
}

// Build resolves selection and builds every resolved target in order.
// An empty selection builds once for the local machine.
func (a *App) Build(ctx context.Context, selection []string, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	return a.build(ctx, cfg, selection, opts)
}

func (a *App) build(ctx context.Context, cfg *domain.Config, selection []string, opts BuildOptions) error {
	mode := domain.Release
	if !opts.Release {
		mode = domain.SelectMode(a.lookupEnv, cfg.Toolchain.ModeEnv)
	}

	reporter := a.reporter()
	res := domain.Resolve(selection, cfg.Registry)

	if len(res.Unknown) > 0 {
		reporter.OnUnknownAliases(res.Unknown)
	}

	switch res.Outcome {
	case domain.OutcomeNoValidTargets:
		reporter.OnNoValidTargets(selection)
		noValid := zerr.With(zerr.Wrap(domain.ErrNoValidTargets, "nothing to build"),
			"selection", strings.Join(selection, " "))
		reporter.OnRunComplete(domain.Report{Mode: mode}, noValid)
		return zerr.Wrap(errors.Join(domain.ErrBuildExecutionFailed, noValid), "build failed")
	case domain.OutcomeNoSelection:
		reporter.OnNoSelection()
	case domain.OutcomeResolved:
	}

	if opts.Clean {
		if err := a.passThrough(ctx, cfg.Toolchain.Clean, nil, domain.ErrCleanFailed); err != nil {
			return err
		}
	}

	reporter.OnPlan(res.Triples, mode)

	provider := telemetry.NewProvider(reporter)
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()

	p := pipeline.New(
		toolchain.NewProvisioner(a.executor, cfg.Toolchain, a.logger, a.stderr),
		toolchain.NewCompiler(a.executor, cfg.Toolchain, a.stdout, a.stderr),
		telemetry.NewOTelTracer(provider),
	)

	report, err := p.Run(ctx, res.Triples, mode)
	reporter.OnRunComplete(report, err)
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrBuildExecutionFailed, err), "build failed")
	}
	return nil
}

// BuildRelease cleans, builds every registered target in Release mode and
// then generates the documentation.
func (a *App) BuildRelease(ctx context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	opts := BuildOptions{ConfigPath: configPath, Clean: true, Release: true}
	if err := a.build(ctx, cfg, []string{domain.AllTargets}, opts); err != nil {
		return err
	}

	var env []string
	if cfg.Toolchain.ModeEnv != "" {
		env = append(env, cfg.Toolchain.ModeEnv+"="+domain.ReleaseModeValue)
	}
	return a.passThrough(ctx, cfg.Toolchain.Docs, env, domain.ErrDocsFailed)
}

// Clean removes previous build artifacts.
func (a *App) Clean(ctx context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}
	return a.passThrough(ctx, cfg.Toolchain.Clean, nil, domain.ErrCleanFailed)
}

// Doc generates the project documentation.
func (a *App) Doc(ctx context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}
	return a.passThrough(ctx, cfg.Toolchain.Docs, nil, domain.ErrDocsFailed)
}

// Targets returns the registered targets in declared order.
func (a *App) Targets(configPath string) ([]domain.Target, error) {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.Target, 0, cfg.Registry.Len())
	for t := range cfg.Registry.Targets() {
		targets = append(targets, t)
	}
	return targets, nil
}

// passThrough runs argv with the command output attached to the App's writers.
func (a *App) passThrough(ctx context.Context, argv, env []string, sentinel error) error {
	cmd, err := domain.NewCommand(argv)
	if err != nil {
		return zerr.Wrap(errors.Join(sentinel, err), "invalid command")
	}
	cmd.Env = env

	a.logger.Info("running " + cmd.String())
	if err := a.executor.Run(ctx, cmd, a.stdout, a.stderr); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(sentinel, err), cmd.Name+" failed"), "command", cmd.String())
	}
	return nil
}
