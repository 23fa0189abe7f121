// Package testutil provides fake calculator executables for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Script writes an executable /bin/sh script with the given body to a
// temporary directory and returns its path. Tests are skipped on platforms
// without a POSIX shell.
func Script(t *testing.T, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

// Common fake calculator bodies.
const (
	// EchoStdin copies its input to stdout, showing exactly what was fed.
	EchoStdin = "exec cat"

	// PrintArgs prints each argument on its own line.
	PrintArgs = `printf '%s\n' "$@"`

	// Hang sleeps well past any test timeout.
	Hang = "exec sleep 30"

	// SupervisorTimedOut mimics coreutils timeout killing its child.
	SupervisorTimedOut = "cat >/dev/null\nexit 124"
)

// RequireBC returns the path of the real bc, skipping the test when it is
// not installed.
func RequireBC(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("bc")
	if err != nil {
		t.Skip("bc not installed")
	}

	return path
}

// RequireTimeout returns the path of the coreutils timeout supervisor,
// skipping the test when it is not installed.
func RequireTimeout(t *testing.T) string {
	t.Helper()

	for _, name := range []string{"timeout", "gtimeout"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	t.Skip("timeout not installed")

	return ""
}
