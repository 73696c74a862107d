// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the hostkit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hostkit",
		Short: "Inspect hostkit's foundation primitives",
		Long: TitleStyle.Render("hostkit") + SubtitleStyle.Render(" - foundation primitives for host applications") + `

hostkit reports how the binary was built, lists the bounded enumerations
and size constants it ships, and exercises the translation backend and
issue catalog used for user-facing errors.

` + SubtitleStyle.Render("Examples:") + `
  hostkit buildinfo           Show the build mode and compiled-in switches
  hostkit modes               List every build mode
  hostkit translate --locale de "Assertion failed"
  hostkit issue unknown-locale
  hostkit config show         Show current configuration`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.setup(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/hostkit/config.cue)")

	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.AddCommand(
		newBuildInfoCommand(app),
		newModesCommand(app),
		newSizesCommand(app),
		newTranslateCommand(app),
		newIssueCommand(app),
		newConfigCommand(app),
		newSelfTestCommand(app),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process on failure. It is called by
// main.main.
func Execute() {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	app.Close()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
