package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/bc-go/internal/errors"
)

func TestBuildArgs(t *testing.T) {
	require.Equal(t, []string{"-l", "-q"}, BuildArgs())
}

func TestBuildSupervisedArgs(t *testing.T) {
	args := BuildSupervisedArgs("/usr/bin/bc", 15*time.Second)
	require.Equal(t, []string{"15s", "/usr/bin/bc", "-l", "-q"}, args)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: time.Second, want: "1s"},
		{in: 20 * time.Second, want: "20s"},
		{in: 1500 * time.Millisecond, want: "2s"},
		{in: 10 * time.Millisecond, want: "1s"},
		{in: 0, want: "0s"},
		{in: -time.Second, want: "0s"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatDuration(tt.in), "in=%s", tt.in)
	}
}

func TestBuildStdin(t *testing.T) {
	require.Equal(t, "2+6\n", BuildStdin("2+6"))
	require.Equal(t, "\n", BuildStdin(""))
}

func TestBuildEnvironment(t *testing.T) {
	require.Nil(t, BuildEnvironment(nil))
	require.Equal(t,
		[]string{"BC_ENV_ARGS=", "BC_LINE_LENGTH=0"},
		BuildEnvironment(map[string]string{"BC_LINE_LENGTH": "0", "BC_ENV_ARGS": ""}),
	)
}

func TestDiscover_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bc")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	got, err := NewDiscoverer(&Config{Path: path, Name: BCName}).Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, path, got)
}

func TestDiscover_ExplicitPathMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-bc")

	_, err := NewDiscoverer(&Config{Path: path}).Discover(context.Background())
	require.Error(t, err)

	spawnErr, ok := stderrors.AsType[*errors.SpawnError](err)
	require.True(t, ok)
	require.Equal(t, path, spawnErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_RelativePathUsesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bc"), []byte("#!/bin/sh\n"), 0o755))

	got, err := NewDiscoverer(&Config{Path: "./bc", Dir: dir}).Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, "./bc", got)

	_, err = NewDiscoverer(&Config{Path: "./bc", Dir: t.TempDir()}).Discover(context.Background())

	_, ok := stderrors.AsType[*errors.SpawnError](err)
	require.True(t, ok)
}

func TestDiscover_SearchesPATH(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires Unix executable semantics")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-calc")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", dir)

	got, err := NewDiscoverer(&Config{Name: "fake-calc"}).Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, path, got)
}

func TestDiscover_SupervisorAlias(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires Unix executable semantics")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "gtimeout")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", dir)

	got, err := NewDiscoverer(&Config{Name: TimeoutName}).Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, path, got)
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewDiscoverer(&Config{Name: "definitely-not-a-calculator"}).Discover(context.Background())
	require.Error(t, err)

	spawnErr, ok := stderrors.AsType[*errors.SpawnError](err)
	require.True(t, ok)
	require.Equal(t, "definitely-not-a-calculator", spawnErr.Path)
	require.Equal(t, "$PATH", spawnErr.SearchedPaths[0])
	require.Contains(t, spawnErr.SearchedPaths, "/usr/bin/definitely-not-a-calculator")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestDiscover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDiscoverer(nil).Discover(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
