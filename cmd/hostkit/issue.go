// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/issue"
	"github.com/hostkit/hostkit/pkg/enumrange"
	"github.com/hostkit/hostkit/pkg/i18n"
)

func newIssueCommand(app *App) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "issue [ID]",
		Short: "List known issues or show guidance for one",
		Long: `Without arguments, list every issue in the catalog. With an ID (name or
number), render that issue's guidance as Markdown.`,
		Example: `  hostkit issue
  hostkit issue unknown-locale
  hostkit issue 3 --style notty`,
		Args: cobra.MaximumNArgs(1),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for id := range enumrange.All[issue.Id]() {
					fmt.Fprintf(w, "%2d %-22s %s\n", id, CmdStyle.Render(id.String()), i18n.ExpandMessage(issue.Get(id).Title()))
				}
				return nil
			}

			id, err := issue.ParseId(args[0])
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			return app.renderIssue(w, id, style)
		}),
	}

	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty")
	return cmd
}
