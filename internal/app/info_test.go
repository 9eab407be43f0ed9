package app_test

import (
	"context"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cross/internal/build"
	"go.trai.ch/cross/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestInfo(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()

	ta.vcs.EXPECT().Revision(gomock.Any()).Return("3f2a9c1d", nil)
	ta.vcs.EXPECT().Branch(gomock.Any()).Return("main", nil)
	ta.executor.EXPECT().Run(gomock.Any(), domain.Command{Name: "rustc", Args: []string{"--version"}}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, "rustc 1.80.0\n")
			return nil
		})

	diag, err := ta.app.Info(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, domain.Diagnostics{
		Version:         build.Version,
		Commit:          build.Commit,
		OS:              runtime.GOOS,
		Arch:            runtime.GOARCH,
		Revision:        "3f2a9c1d",
		Branch:          "main",
		CompilerVersion: "rustc 1.80.0",
	}, diag)
}

func TestInfo_FailedProbesAreUnknown(t *testing.T) {
	ta := newTestApp(t)
	ta.withDefaultConfig()

	ta.vcs.EXPECT().Revision(gomock.Any()).Return("", errors.New("not a git repository"))
	ta.vcs.EXPECT().Branch(gomock.Any()).Return("", errors.New("not a git repository"))
	ta.executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("not found"))
	ta.logger.EXPECT().Warn(gomock.Any()).Times(3)

	diag, err := ta.app.Info(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.Unknown, diag.Revision)
	assert.Equal(t, domain.Unknown, diag.Branch)
	assert.Equal(t, domain.Unknown, diag.CompilerVersion)
}
