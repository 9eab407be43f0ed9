package shell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides []string
		expected  []string
	}{
		{
			name:     "no overrides keeps system env",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			expected: []string{"USER=test", "PATH=/bin"},
		},
		{
			name:      "override replaces in place",
			sysEnv:    []string{"USER=test", "BUILD_MODE=DEBUG", "PATH=/bin"},
			overrides: []string{"BUILD_MODE=RELEASE"},
			expected:  []string{"USER=test", "BUILD_MODE=RELEASE", "PATH=/bin"},
		},
		{
			name:      "new keys are appended",
			sysEnv:    []string{"USER=test"},
			overrides: []string{"BUILD_MODE=RELEASE"},
			expected:  []string{"USER=test", "BUILD_MODE=RELEASE"},
		},
		{
			name:      "malformed entries are dropped",
			sysEnv:    []string{"USER=test", "garbage"},
			overrides: []string{"also-garbage", "A=1"},
			expected:  []string{"USER=test", "A=1"},
		},
		{
			name:      "values may contain equals",
			sysEnv:    nil,
			overrides: []string{"RUSTFLAGS=-C target-cpu=native"},
			expected:  []string{"RUSTFLAGS=-C target-cpu=native"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveEnvironment(tt.sysEnv, tt.overrides)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLookPath_EmptyPATH(t *testing.T) {
	_, err := lookPath("echo", []string{"USER=test"})
	assert.Error(t, err)
}

func TestLookPath_ExecutableNotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command", []string{"PATH=/nonexistent/dir"})
	assert.Error(t, err)
}

func TestLookPath_UsesLastPATH(t *testing.T) {
	dir := t.TempDir()
	//nolint:gosec // test requires an executable file
	err := os.WriteFile(dir+"/tool", []byte("#!/bin/sh\n"), 0o700)
	assert.NoError(t, err)

	got, err := lookPath("tool", []string{"PATH=/nonexistent", "PATH=" + dir})
	assert.NoError(t, err)
	assert.Equal(t, dir+"/tool", got)
}

func TestFindExecutable_Directory(t *testing.T) {
	assert.Error(t, findExecutable(t.TempDir()))
}

func TestFindExecutable_NotExecutable(t *testing.T) {
	file := t.TempDir() + "/plain"
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	assert.ErrorIs(t, findExecutable(file), os.ErrPermission)
}
