// Package git reads revision information from the working tree with the git CLI.
package git

import (
	"bytes"
	"context"
	"io"
	"strings"

	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/cross/internal/core/ports"
	"go.trai.ch/zerr"
)

// Repository implements ports.VersionControl by running git through an executor.
type Repository struct {
	executor ports.Executor
	dir      string
}

// NewRepository creates a Repository for the working tree at dir.
// An empty dir means the current directory.
func NewRepository(executor ports.Executor, dir string) *Repository {
	return &Repository{executor: executor, dir: dir}
}

// Revision returns the full hash of HEAD.
func (r *Repository) Revision(ctx context.Context) (string, error) {
	return r.revParse(ctx, "HEAD")
}

// Branch returns the name of the checked out branch, or "HEAD" when detached.
func (r *Repository) Branch(ctx context.Context) (string, error) {
	return r.revParse(ctx, "--abbrev-ref", "HEAD")
}

func (r *Repository) revParse(ctx context.Context, args ...string) (string, error) {
	cmd := domain.Command{
		Name: "git",
		Args: append([]string{"rev-parse"}, args...),
		Dir:  r.dir,
	}

	var stdout bytes.Buffer
	if err := r.executor.Run(ctx, cmd, &stdout, io.Discard); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read git revision"), "command", cmd.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}
