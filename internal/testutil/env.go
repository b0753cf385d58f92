package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// WithConfigDir points os.UserConfigDir at dir for the test scope so tests
// never touch the real settings or history files.
func WithConfigDir(t *testing.T, dir string) func() {
	t.Helper()
	restoreHome := WithEnv(t, "HOME", dir)
	restoreXDG := WithEnv(t, "XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	return func() {
		restoreXDG()
		restoreHome()
	}
}
