//go:build integration

package integration

import (
	"errors"
	"os/exec"
	"testing"

	bc "github.com/wagiedev/bc-go"
)

// skipIfBCNotInstalled skips the test if the error indicates bc could not be spawned.
func skipIfBCNotInstalled(t *testing.T, err error) {
	t.Helper()

	if spawnErr, ok := errors.AsType[*bc.SpawnError](err); ok && errors.Is(spawnErr, exec.ErrNotFound) {
		t.Skip("bc not installed")
	}
}

// requireSupervisor returns the timeout supervisor path or skips the test.
func requireSupervisor(t *testing.T) string {
	t.Helper()

	for _, name := range []string{"timeout", "gtimeout"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	t.Skip("timeout not installed")

	return ""
}
