// Package toolchain drives the external installer and compiler processes.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"go.trai.ch/cross/internal/adapters/shell"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxCapturedStderr bounds the installer output attached to errors.
const maxCapturedStderr = 4096

// Provisioner implements ports.Provisioner by running the toolchain installer.
type Provisioner struct {
	executor  ports.Executor
	toolchain domain.Toolchain
	logger    ports.Logger
	out       io.Writer
}

// NewProvisioner creates a Provisioner. Installer output is streamed to out.
func NewProvisioner(executor ports.Executor, tc domain.Toolchain, logger ports.Logger, out io.Writer) *Provisioner {
	if out == nil {
		out = io.Discard
	}
	return &Provisioner{
		executor:  executor,
		toolchain: tc,
		logger:    logger,
		out:       out,
	}
}

// Ensure installs the toolchain for triple.
// An installer that fails while reporting the toolchain as already present counts as success.
func (p *Provisioner) Ensure(ctx context.Context, triple domain.Triple) error {
	cmd, err := p.toolchain.InstallCommand(triple)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrToolchainInstallFailed, err), "invalid installer command"),
			"triple", triple.String())
	}

	// One writer for both streams so os/exec shares a single pipe.
	var captured bytes.Buffer
	w := io.MultiWriter(p.out, &captured)
	runErr := p.executor.Run(ctx, cmd, w, w)
	if runErr == nil {
		return nil
	}

	if ctx.Err() == nil && p.alreadyInstalled(captured.String()) {
		p.logger.Info("toolchain for " + triple.String() + " already installed")
		return nil
	}

	installErr := zerr.Wrap(errors.Join(domain.ErrToolchainInstallFailed, runErr),
		"failed to install toolchain for "+triple.String())
	installErr = zerr.With(installErr, "triple", triple.String())
	if code, ok := shell.ExitCode(runErr); ok {
		installErr = zerr.With(installErr, "exit_code", code)
	}
	if stderr := tail(captured.String(), maxCapturedStderr); stderr != "" {
		installErr = zerr.With(installErr, "stderr", stderr)
	}
	return installErr
}

func (p *Provisioner) alreadyInstalled(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range p.toolchain.InstalledMarkers {
		if marker == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
