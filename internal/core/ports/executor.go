package ports

import (
	"context"
	"io"

	"go.trai.ch/cross/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts cmd, streams its output to stdout and stderr and blocks until it exits.
	//
	// A non-zero exit is returned as an error carrying the "exit_code" metadata
	// and wrapping the underlying *exec.ExitError.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
