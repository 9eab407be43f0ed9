package toolchain

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/cross/internal/adapters/shell"
	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler implements ports.Compiler by running the configured build command.
type Compiler struct {
	executor  ports.Executor
	toolchain domain.Toolchain
	stdout    io.Writer
	stderr    io.Writer
}

// NewCompiler creates a Compiler that streams compiler output to stdout and stderr.
func NewCompiler(executor ports.Executor, tc domain.Toolchain, stdout, stderr io.Writer) *Compiler {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Compiler{
		executor:  executor,
		toolchain: tc,
		stdout:    stdout,
		stderr:    stderr,
	}
}

// Compile builds the project for triple in mode.
func (c *Compiler) Compile(ctx context.Context, triple domain.Triple, mode domain.BuildMode) error {
	cmd, err := c.toolchain.CompileCommand(triple, mode)
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrCompileFailed, err), "invalid compiler command")
	}

	if runErr := c.executor.Run(ctx, cmd, c.stdout, c.stderr); runErr != nil {
		compileErr := zerr.Wrap(errors.Join(domain.ErrCompileFailed, runErr), "failed to compile "+describe(triple))
		compileErr = zerr.With(compileErr, "triple", describe(triple))
		compileErr = zerr.With(compileErr, "mode", mode.String())
		if code, ok := shell.ExitCode(runErr); ok {
			compileErr = zerr.With(compileErr, "exit_code", code)
		}
		return compileErr
	}
	return nil
}

func describe(triple domain.Triple) string {
	if triple == "" {
		return "local machine"
	}
	return triple.String()
}
