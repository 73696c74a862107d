// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hostkit/hostkit/internal/config"
	"github.com/hostkit/hostkit/internal/logging"
)

// Tests in this package install process-wide settings (assertion handler,
// logger, translation catalog) through App.setup and must not run in
// parallel.

type stubProvider struct {
	cfg *config.Config
	err error
}

func (p stubProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := *p.cfg
	return &cfg, nil
}

func defaults() stubProvider {
	return stubProvider{cfg: config.DefaultConfig()}
}

// runCLI executes the command tree with args and returns what it wrote.
func runCLI(t *testing.T, provider ConfigProvider, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewApp(Dependencies{Config: provider, Stdout: &out, Stderr: &errOut})
	t.Cleanup(app.Close)

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "v1.2.3", "abc1234", "2026-06-15T10:00:00Z"
	if got, want := getVersionString(), "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}

	Version = "dev"
	if got, want := getVersionString(), "dev (built from source)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(NewApp(Dependencies{Config: defaults()}))

	for _, name := range []string{"buildinfo", "modes", "sizes", "translate", "issue", "config", "selftest"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("subcommand %q not registered (err %v)", name, err)
		}
	}
}

func TestSetup_LogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level config.LogLevel
		want  log.Level
	}{
		{"unset follows the build", "", logging.DefaultLevel()},
		{"explicit", config.LogLevelWarn, log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.LogLevel = tt.level

			var errOut bytes.Buffer
			app := NewApp(Dependencies{Config: stubProvider{cfg: cfg}, Stderr: &errOut})
			t.Cleanup(app.Close)
			app.setup(context.Background())

			if got := app.logger.GetLevel(); got != tt.want {
				t.Errorf("logger level = %v, want %v", got, tt.want)
			}
		})
	}
}
