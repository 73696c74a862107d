// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/pkg/i18n"
)

func newTranslateCommand(app *App) *cobra.Command {
	var locale, catalogPath string

	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate English messages with the active catalog",
		Long: `Translate each argument with the translation catalog and print one
result per line. Text without a translation is printed unchanged.

--locale and --catalog override the locale and catalog_path settings.`,
		Example: `  hostkit translate --locale de --catalog de.toml "Assertion failed"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: app.run(func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("locale") || cmd.Flags().Changed("catalog") {
				if !cmd.Flags().Changed("locale") {
					locale = app.cfg.Locale
				}
				if !cmd.Flags().Changed("catalog") {
					catalogPath = string(app.cfg.CatalogPath)
				}
				c, err := loadCatalog(locale, catalogPath)
				if err != nil {
					return &ExitError{Code: ExitConfig, Err: err}
				}
				defer i18n.SetDefault(c)()
			}

			w := cmd.OutOrStdout()
			for _, text := range args {
				fmt.Fprintln(w, i18n.ExpandMessage(text))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale to translate into")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "translation catalog file (.toml or .cue)")
	return cmd
}
