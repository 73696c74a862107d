// SPDX-License-Identifier: MPL-2.0

// Package cli contains CLI integration tests using testscript.
//
// TestMain builds one hostkit binary per build mode so scripts can compare
// release, devel and debug behavior.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/enumrange"
)

// binDir holds hostkit, hostkit-devel and hostkit-debug for this run.
var binDir string

func TestMain(m *testing.M) {
	os.Exit(runMain(m))
}

func runMain(m *testing.M) int {
	root, err := moduleRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	binDir, err = os.MkdirTemp("", "hostkit-cli-")
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating bin dir:", err)
		return 1
	}
	defer os.RemoveAll(binDir)

	for mode := range enumrange.All[buildmode.Mode]() {
		if err := buildBinary(root, mode); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return m.Run()
}

// moduleRoot asks the go command for the directory holding go.mod.
func moduleRoot() (string, error) {
	out, err := exec.CommandContext(context.Background(), "go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("go env GOMOD: %w", err)
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", fmt.Errorf("not inside a module")
	}
	return filepath.Dir(gomod), nil
}

// binaryName is "hostkit" for Release and "hostkit-<mode>" otherwise.
func binaryName(mode buildmode.Mode) string {
	name := "hostkit"
	if mode != buildmode.Release {
		name += "-" + mode.String()
	}
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

func buildBinary(root string, mode buildmode.Mode) error {
	args := []string{"build", "-o", filepath.Join(binDir, binaryName(mode))}
	if tag := mode.Tag(); tag != "" {
		args = append(args, "-tags", tag)
	}
	args = append(args, ".")

	cmd := exec.CommandContext(context.Background(), "go", args...)
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("building %s: %w\n%s", binaryName(mode), err, stderr.String())
	}
	return nil
}

func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))

			// Scripts never see the user's real configuration.
			env.Setenv("HOSTKIT_CONFIG_DIR", filepath.Join(env.WorkDir, ".config", "hostkit"))
			env.Setenv("HOME", env.WorkDir)
			env.Setenv("NO_COLOR", "1")
			return nil
		},
		ContinueOnError: true,
	})
}
