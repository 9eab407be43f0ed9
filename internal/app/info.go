package app

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"

	"go.trai.ch/cross/internal/build"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Info collects the diagnostic bundle.
// Probes that fail are logged and reported as domain.Unknown.
func (a *App) Info(ctx context.Context, configPath string) (domain.Diagnostics, error) {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return domain.Diagnostics{}, err
	}

	diag := domain.Diagnostics{
		Version:         build.Version,
		Commit:          build.Commit,
		OS:              runtime.GOOS,
		Arch:            runtime.GOARCH,
		Revision:        domain.Unknown,
		Branch:          domain.Unknown,
		CompilerVersion: domain.Unknown,
	}

	// Each probe owns one field.
	var g errgroup.Group
	g.Go(func() error {
		a.probe(&diag.Revision, func() (string, error) { return a.vcs.Revision(ctx) })
		return nil
	})
	g.Go(func() error {
		a.probe(&diag.Branch, func() (string, error) { return a.vcs.Branch(ctx) })
		return nil
	})
	g.Go(func() error {
		a.probe(&diag.CompilerVersion, func() (string, error) {
			return a.capture(ctx, cfg.Toolchain.Version)
		})
		return nil
	})
	_ = g.Wait()

	return diag, nil
}

func (a *App) probe(field *string, fn func() (string, error)) {
	value, err := fn()
	if err != nil {
		a.logger.Warn(err.Error())
		return
	}
	if value != "" {
		*field = value
	}
}

// capture runs argv and returns its trimmed standard output.
func (a *App) capture(ctx context.Context, argv []string) (string, error) {
	cmd, err := domain.NewCommand(argv)
	if err != nil {
		return "", err
	}

	var stdout bytes.Buffer
	if err := a.executor.Run(ctx, cmd, &stdout, io.Discard); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to query compiler version"), "command", cmd.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}
