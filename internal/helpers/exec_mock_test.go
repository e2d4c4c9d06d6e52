package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockCommandRunnerDefaults(t *testing.T) {
	t.Parallel()
	mock := &MockCommandRunner{}
	ctx := context.Background()

	assert.False(t, mock.CommandExists("anything"))
	assert.NoError(t, mock.RequireCommand("anything"))

	out, err := mock.RunCommand(ctx, "ls")
	assert.NoError(t, err)
	assert.Empty(t, out)

	assert.NoError(t, mock.StartDetached("firefox"))
	assert.Equal(t, 0, mock.GetExitCode(errors.New("boom")))
}

func TestMockCommandRunnerRecordsCalls(t *testing.T) {
	t.Parallel()
	mock := &MockCommandRunner{
		RunCommandFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("launch failed")
		},
	}
	ctx := context.Background()

	_, err := mock.RunCommand(ctx, "xdg-open", "/usr/bin/firefox")
	assert.Error(t, err)

	assert.NoError(t, mock.StartDetached("app", "--flag"))

	assert.Equal(t, [][]string{
		{"xdg-open", "/usr/bin/firefox"},
		{"app", "--flag"},
	}, mock.Calls)
}

func TestMockCommandRunnerOverrides(t *testing.T) {
	t.Parallel()
	mock := &MockCommandRunner{
		CommandExistsFunc: func(name string) bool { return name == "xdg-open" },
		GetExitCodeFunc:   func(err error) int { return 42 },
	}

	assert.True(t, mock.CommandExists("xdg-open"))
	assert.False(t, mock.CommandExists("open"))
	assert.Equal(t, 42, mock.GetExitCode(nil))
}
