// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

// MustSetenv sets key to value and returns a function that restores the
// original value, or unsets key if it had none.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	original, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() { restoreEnv(t, key, original, had) }
}

// MustUnsetenv unsets key and returns a function that restores it.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	original, had := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() { restoreEnv(t, key, original, had) }
}

func restoreEnv(t testing.TB, key, value string, had bool) {
	t.Helper()
	var err error
	if had {
		err = os.Setenv(key, value)
	} else {
		err = os.Unsetenv(key)
	}
	if err != nil {
		t.Errorf("failed to restore env %s: %v", key, err)
	}
}

// SetHomeDir points the platform's home variable (USERPROFILE on Windows,
// HOME elsewhere) at dir and returns the restore function.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()
	if runtime.GOOS == "windows" {
		return MustSetenv(t, "USERPROFILE", dir)
	}
	return MustSetenv(t, "HOME", dir)
}

// IsolateUserDirs points HOME, XDG_CONFIG_HOME and APPDATA at a fresh temp
// dir for the rest of the test and returns that dir. Not safe for parallel
// tests.
func IsolateUserDirs(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(SetHomeDir(t, dir))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", dir))
	t.Cleanup(MustSetenv(t, "APPDATA", dir))
	return dir
}

// ClearEnvPrefix unsets every variable whose name starts with prefix for
// the rest of the test, so ambient settings cannot leak into it.
func ClearEnvPrefix(t testing.TB, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, prefix) {
			t.Cleanup(MustUnsetenv(t, key))
		}
	}
}
