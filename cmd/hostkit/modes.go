// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/issue"
	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/enumrange"
)

func newModesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "modes [NAME]",
		Short: "List every build mode, or describe one",
		Long: `List every build mode with its build tag. The mode this binary was
built in is marked with '*'.

With NAME, only that mode is shown.`,
		Example: `  hostkit modes
  hostkit modes debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				m, err := buildmode.ParseMode(args[0])
				if err != nil {
					return &ExitError{
						Code: ExitUsage,
						Err: issue.NewErrorContext().
							WithOperation("parse build mode").
							WithResource(args[0]).
							WithSuggestion("Use release, devel or debug").
							WithIssue(issue.InvalidBuildModeId).
							Wrap(err).
							BuildError(),
					}
				}
				printMode(w, m)
				return nil
			}

			for m := enumrange.First[buildmode.Mode](); enumrange.NotEqual(m, enumrange.End); enumrange.Inc(&m) {
				printMode(w, m)
			}
			return nil
		}),
	}
}

func printMode(w io.Writer, m buildmode.Mode) {
	marker := " "
	if m == buildmode.Current {
		marker = "*"
	}
	tag := m.Tag()
	if tag == "" {
		tag = "-"
	}
	fmt.Fprintf(w, "%s %d %s %s\n", marker, m, ModeStyle(m).Render(fmt.Sprintf("%-8s", m)), SubtitleStyle.Render(tag))
}
