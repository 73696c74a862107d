// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"testing"
)

// Tests in this file modify the process environment.

func TestMustSetenv_RestoresPrevious(t *testing.T) {
	t.Cleanup(MustSetenv(t, "HOSTKIT_TESTUTIL_A", "before"))

	restore := MustSetenv(t, "HOSTKIT_TESTUTIL_A", "during")
	if got := os.Getenv("HOSTKIT_TESTUTIL_A"); got != "during" {
		t.Fatalf("value = %q, want during", got)
	}
	restore()
	if got := os.Getenv("HOSTKIT_TESTUTIL_A"); got != "before" {
		t.Errorf("after restore = %q, want before", got)
	}
}

func TestMustSetenv_UnsetsWhenAbsent(t *testing.T) {
	t.Cleanup(MustUnsetenv(t, "HOSTKIT_TESTUTIL_B"))

	restore := MustSetenv(t, "HOSTKIT_TESTUTIL_B", "x")
	restore()
	if _, ok := os.LookupEnv("HOSTKIT_TESTUTIL_B"); ok {
		t.Error("variable should be unset after restore")
	}
}

func TestSetHomeDir(t *testing.T) {
	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	original := os.Getenv(key)
	dir := t.TempDir()

	restore := SetHomeDir(t, dir)
	if got := os.Getenv(key); got != dir {
		t.Errorf("%s = %q, want %q", key, got, dir)
	}
	restore()
	if got := os.Getenv(key); got != original {
		t.Errorf("after restore %s = %q, want %q", key, got, original)
	}
}

func TestIsolateUserDirs(t *testing.T) {
	dir := IsolateUserDirs(t)
	for _, key := range []string{"XDG_CONFIG_HOME", "APPDATA"} {
		if got := os.Getenv(key); got != dir {
			t.Errorf("%s = %q, want %q", key, got, dir)
		}
	}
}

func TestClearEnvPrefix(t *testing.T) {
	t.Cleanup(MustSetenv(t, "HOSTKIT_TESTUTIL_C", "1"))
	t.Cleanup(MustSetenv(t, "OTHER_TESTUTIL_C", "1"))

	t.Run("cleared", func(t *testing.T) {
		ClearEnvPrefix(t, "HOSTKIT_TESTUTIL_")
		if _, ok := os.LookupEnv("HOSTKIT_TESTUTIL_C"); ok {
			t.Error("prefixed variable should be unset")
		}
		if _, ok := os.LookupEnv("OTHER_TESTUTIL_C"); !ok {
			t.Error("unrelated variable should survive")
		}
	})

	if got := os.Getenv("HOSTKIT_TESTUTIL_C"); got != "1" {
		t.Errorf("variable should be restored after the subtest, got %q", got)
	}
}
