// Package shell provides an os/exec based executor for external commands.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/cross/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	environ func() []string
}

// NewExecutor creates a new Executor that inherits the process environment.
func NewExecutor() *Executor {
	return &Executor{environ: os.Environ}
}

// Run starts cmd and waits for it to exit.
func (e *Executor) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return domain.ErrEmptyCommand
	}

	cmdEnv := resolveEnvironment(e.environ(), cmd.Env)

	// Resolve against the merged PATH so per-command overrides are honoured.
	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) && !strings.ContainsRune(cmd.Name, filepath.Separator) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // toolchain command from project config
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = cmdEnv
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Start(); err != nil {
		startErr := zerr.Wrap(errors.Join(domain.ErrCommandStartFailed, err), "failed to start "+cmd.Name)
		return zerr.With(startErr, "command", cmd.String())
	}

	if err := c.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		runErr := zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), cmd.Name+" failed")
		runErr = zerr.With(runErr, "command", cmd.String())
		return zerr.With(runErr, "exit_code", exitCode)
	}

	return nil
}

// ExitCode extracts the exit status of a failed command from err.
// It returns false if err does not carry one.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// resolveEnvironment applies overrides on top of the inherited environment.
// Later entries win; the result keeps the inherited order with new keys appended.
func resolveEnvironment(sysEnv, overrides []string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	set := func(entry string) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		set(entry)
	}
	for _, entry := range overrides {
		set(entry)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
