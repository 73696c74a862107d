// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/config"
	"github.com/hostkit/hostkit/internal/issue"
)

// newConfigCommand creates the `hostkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hostkit configuration",
		Long: `Manage hostkit configuration.

Configuration is stored in:
  - Linux: ~/.config/hostkit/config.cue
  - macOS: ~/Library/Application Support/hostkit/config.cue
  - Windows: %APPDATA%\hostkit\config.cue

HOSTKIT_LOG_LEVEL, HOSTKIT_ASSERT_POLICY, HOSTKIT_LOCALE and
HOSTKIT_CATALOG_PATH override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: app.run(func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, app)
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: app.run(func(cmd *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Configuration file:"), path)
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: app.run(func(cmd *cobra.Command, _ []string) error {
			path := app.cfgFile
			if path == "" {
				var err error
				if path, err = config.FilePath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}),
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	res, err := loadWithSource(cmd, app)
	if err != nil {
		_ = app.renderIssue(cmd.ErrOrStderr(), issue.ConfigLoadFailedId, "auto")
		return &ExitError{Code: ExitConfig, Err: err}
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source := SubtitleStyle.Render("(using defaults)")
	if res.Path != "" {
		source = res.Path
	}
	fmt.Fprintf(w, "%s: %s\n\n", CmdStyle.Render("Config file"), source)

	cfg := res.Config
	printSetting(w, "log_level", string(cfg.LogLevel), "(default)")
	printSetting(w, "assert_policy", string(cfg.AssertPolicy), "(panic)")
	printSetting(w, "locale", cfg.Locale, "(english)")
	printSetting(w, "catalog_path", string(cfg.CatalogPath), "(none)")
	return nil
}

// loadWithSource reports the file in use when the provider can tell.
func loadWithSource(cmd *cobra.Command, app *App) (*config.Result, error) {
	opts := config.LoadOptions{ConfigFilePath: app.cfgFile}
	if sp, ok := app.Config.(config.SourceProvider); ok {
		return sp.LoadWithSource(cmd.Context(), opts)
	}
	cfg, err := app.Config.Load(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}
	return &config.Result{Config: cfg}, nil
}

func printSetting(w io.Writer, key, value, unset string) {
	if value == "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render(key), SubtitleStyle.Render(unset))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render(key), SuccessStyle.Render(value))
}
