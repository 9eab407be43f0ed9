package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cross/internal/app"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/cross/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	linux domain.Triple = "x86_64-unknown-linux-gnu"
	rpi   domain.Triple = "armv7-unknown-linux-gnueabihf"
)

type testApp struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	vcs      *mocks.MockVersionControl
	reporter *mocks.MockReporter
	env      map[string]string
	commands []domain.Command
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		vcs:      mocks.NewMockVersionControl(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		env:      map[string]string{},
	}

	ta.app = app.New(ta.loader, ta.executor, ta.logger, ta.vcs).
		WithLookupEnv(func(key string) (string, bool) {
			v, ok := ta.env[key]
			return v, ok
		}).
		WithOutput(io.Discard, io.Discard).
		WithReporter(func(io.Writer) ports.Reporter { return ta.reporter })

	ta.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	ta.reporter.EXPECT().OnStepStart(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	ta.reporter.EXPECT().OnStepComplete(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return ta
}

func (ta *testApp) withDefaultConfig() {
	ta.loader.EXPECT().Load(domain.DefaultConfigFile).Return(domain.DefaultConfig(), nil)
}

// recordCommands makes every command succeed unless fail returns an error for it.
func (ta *testApp) recordCommands(fail func(domain.Command) error) {
	ta.executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			ta.commands = append(ta.commands, cmd)
			if fail != nil {
				return fail(cmd)
			}
			return nil
		}).AnyTimes()
}

func cmdline(cmds []domain.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.String())
	}
	return out
}

func TestBuild_NoSelectionBuildsLocally(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)

	gomock.InOrder(
		ta.reporter.EXPECT().OnNoSelection(),
		ta.reporter.EXPECT().OnPlan(nil, domain.Debug),
		ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil),
	)

	require.NoError(t, ta.app.Build(context.Background(), nil, app.BuildOptions{}))
	assert.Equal(t, []string{"cargo build"}, cmdline(ta.commands))
}

func TestBuild_ResolvesAndDedups(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)

	ta.reporter.EXPECT().OnUnknownAliases([]string{"bogus"})
	ta.reporter.EXPECT().OnPlan([]domain.Triple{linux, rpi}, domain.Debug)
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil).
		Do(func(report domain.Report, _ error) {
			assert.Len(t, report.Results, 2)
		})

	err := ta.app.Build(context.Background(), []string{"linux", "bogus", "rpi", "linux"}, app.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rustup target add " + string(linux),
		"cargo build --target " + string(linux),
		"rustup target add " + string(rpi),
		"cargo build --target " + string(rpi),
	}, cmdline(ta.commands))
}

func TestBuild_NoValidTargets(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()

	gomock.InOrder(
		ta.reporter.EXPECT().OnUnknownAliases([]string{"bogus", "nope"}),
		ta.reporter.EXPECT().OnNoValidTargets([]string{"bogus", "nope"}),
		ta.reporter.EXPECT().OnRunComplete(domain.Report{Mode: domain.Debug}, gomock.Any()),
	)

	err := ta.app.Build(context.Background(), []string{"bogus", "nope"}, app.BuildOptions{Clean: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.ErrorIs(t, err, domain.ErrNoValidTargets)
}

func TestBuild_ReleaseFromEnvironment(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)
	ta.env["BUILD_MODE"] = "RELEASE"

	ta.reporter.EXPECT().OnPlan([]domain.Triple{rpi}, domain.Release)
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil)

	require.NoError(t, ta.app.Build(context.Background(), []string{"rpi"}, app.BuildOptions{}))

	require.Len(t, ta.commands, 2)
	assert.Equal(t, []string{"build", "--target", string(rpi), "--release"}, ta.commands[1].Args)
	assert.Equal(t, []string{"BUILD_MODE=RELEASE"}, ta.commands[1].Env)
}

func TestBuild_ModeValueIsExact(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)
	ta.env["BUILD_MODE"] = "release"

	ta.reporter.EXPECT().OnNoSelection()
	ta.reporter.EXPECT().OnPlan(nil, domain.Debug)
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil)

	require.NoError(t, ta.app.Build(context.Background(), nil, app.BuildOptions{}))
}

func TestBuild_CompileFailureAbortsRemainingTargets(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(func(cmd domain.Command) error {
		if cmd.Name == "cargo" {
			return errors.New("exit status 101")
		}
		return nil
	})

	ta.reporter.EXPECT().OnPlan(gomock.Any(), domain.Debug)
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), gomock.Not(nil)).
		Do(func(report domain.Report, _ error) {
			assert.Equal(t, []domain.BuildResult{{Triple: linux, Status: domain.StatusCompileFailed}}, report.Results)
		})

	err := ta.app.Build(context.Background(), []string{"linux", "rpi"}, app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.ErrorIs(t, err, domain.ErrCompileFailed)
	assert.Len(t, ta.commands, 2, "rpi must not be attempted")
}

func TestBuild_InstallFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(func(cmd domain.Command) error {
		if cmd.Name == "rustup" {
			return errors.New("exit status 1")
		}
		return nil
	})

	ta.reporter.EXPECT().OnPlan(gomock.Any(), gomock.Any())
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), gomock.Not(nil))

	err := ta.app.Build(context.Background(), []string{"rpi"}, app.BuildOptions{})
	assert.ErrorIs(t, err, domain.ErrToolchainInstallFailed)
	assert.Equal(t, []string{"rustup target add " + string(rpi)}, cmdline(ta.commands))
}

func TestBuild_CleanRunsFirst(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)

	ta.reporter.EXPECT().OnPlan(gomock.Any(), gomock.Any())
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil)

	require.NoError(t, ta.app.Build(context.Background(), []string{"linux"}, app.BuildOptions{Clean: true}))
	assert.Equal(t, []string{
		"cargo clean",
		"rustup target add " + string(linux),
		"cargo build --target " + string(linux),
	}, cmdline(ta.commands))
}

func TestBuild_CleanFailureStops(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(func(domain.Command) error { return errors.New("exit status 1") })

	err := ta.app.Build(context.Background(), []string{"linux"}, app.BuildOptions{Clean: true})
	assert.ErrorIs(t, err, domain.ErrCleanFailed)
	assert.Len(t, ta.commands, 1)
}

func TestBuild_ConfigError(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load("custom.yaml").Return(nil, domain.ErrConfigParseFailed)

	err := ta.app.Build(context.Background(), nil, app.BuildOptions{ConfigPath: "custom.yaml"})
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.NotErrorIs(t, err, domain.ErrBuildExecutionFailed)
}

func TestBuildRelease(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)

	ta.reporter.EXPECT().OnPlan(gomock.Any(), domain.Release).
		Do(func(triples []domain.Triple, _ domain.BuildMode) {
			assert.Len(t, triples, domain.DefaultRegistry().Len())
		})
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), nil)

	require.NoError(t, ta.app.BuildRelease(context.Background(), ""))

	require.Len(t, ta.commands, 2+2*domain.DefaultRegistry().Len())
	assert.Equal(t, "cargo clean", ta.commands[0].String())
	for _, cmd := range ta.commands[1 : len(ta.commands)-1] {
		if cmd.Name == "cargo" {
			assert.Contains(t, cmd.Args, "--release")
		}
	}
	docs := ta.commands[len(ta.commands)-1]
	assert.Equal(t, "cargo doc --no-deps", docs.String())
	assert.Equal(t, []string{"BUILD_MODE=RELEASE"}, docs.Env)
}

func TestBuildRelease_BuildFailureSkipsDocs(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(func(cmd domain.Command) error {
		if cmd.Name == "rustup" {
			return errors.New("exit status 1")
		}
		return nil
	})

	ta.reporter.EXPECT().OnPlan(gomock.Any(), domain.Release)
	ta.reporter.EXPECT().OnRunComplete(gomock.Any(), gomock.Not(nil))

	err := ta.app.BuildRelease(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	for _, cmd := range ta.commands {
		assert.NotEqual(t, "cargo doc --no-deps", cmd.String())
	}
}

func TestClean(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(nil)

	require.NoError(t, ta.app.Clean(context.Background(), ""))
	assert.Equal(t, []string{"cargo clean"}, cmdline(ta.commands))
}

func TestDoc_Failure(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()
	ta.recordCommands(func(domain.Command) error { return errors.New("exit status 1") })

	err := ta.app.Doc(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrDocsFailed)
}

func TestTargets(t *testing.T) {
	ta := newTestApp(t)
	cfg := domain.DefaultConfig()
	cfg.Registry = domain.MustRegistry(
		domain.Target{Alias: "b", Triple: "tb"},
		domain.Target{Alias: "a", Triple: "ta"},
	)
	ta.loader.EXPECT().Load(domain.DefaultConfigFile).Return(cfg, nil)

	targets, err := ta.app.Targets("")
	require.NoError(t, err)
	assert.Equal(t, []domain.Target{{Alias: "b", Triple: "tb"}, {Alias: "a", Triple: "ta"}}, targets)
}
