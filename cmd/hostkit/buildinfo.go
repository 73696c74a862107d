// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/enumrange"
)

func newBuildInfoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buildinfo",
		Short: "Show the build mode and which switches are compiled in",
		Args:  cobra.NoArgs,
		RunE: app.run(func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			tag := buildmode.Current.Tag()
			if tag == "" {
				tag = "(none)"
			}

			fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("version:"), getVersionString())
			fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("mode:"), ModeStyle(buildmode.Current).Render(enumrange.Display(buildmode.Current)))
			fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("tag:"), tag)
			fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("debug switch:"), onOff(buildmode.DebugEnabled))
			fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("devel switch:"), onOff(buildmode.DevelEnabled))
			return nil
		}),
	}
}
