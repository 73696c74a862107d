// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/issue"
	"github.com/hostkit/hostkit/pkg/bytesize"
)

func newSizesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes [SIZE...]",
		Short: "List the size constants, or convert sizes to bytes",
		Example: `  hostkit sizes
  hostkit sizes 64k 16MiB`,
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, s := range bytesize.All() {
					fmt.Fprintf(w, "%-10s %12d  %s\n", CmdStyle.Render(s.Name), s.Bytes, SubtitleStyle.Render(bytesize.Format(s.Bytes)))
				}
				return nil
			}

			for _, arg := range args {
				n, err := bytesize.Parse(arg)
				if err != nil {
					return &ExitError{
						Code: ExitUsage,
						Err: issue.NewErrorContext().
							WithOperation("parse size").
							WithResource(arg).
							WithSuggestion("Use a number with an optional unit, e.g. 64k or 16MiB").
							WithIssue(issue.InvalidSizeId).
							Wrap(err).
							BuildError(),
					}
				}
				fmt.Fprintf(w, "%s = %d\n", arg, n)
			}
			return nil
		}),
	}
}
