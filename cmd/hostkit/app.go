// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/config"
	"github.com/hostkit/hostkit/internal/issue"
	"github.com/hostkit/hostkit/internal/logging"
	"github.com/hostkit/hostkit/pkg/assert"
	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/i18n"
	"github.com/hostkit/hostkit/pkg/scopeguard"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// App wires CLI services and the process-wide settings derived from
	// configuration. Cobra handlers receive an App reference.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		verbose bool
		cfgFile string

		cfg    *config.Config
		logger *log.Logger

		// rendering is set while an issue is being rendered.
		rendering bool
		// restore undoes the process-wide settings installed by setup.
		restore []func()
	}
)

// NewApp builds an App, filling unset dependencies with defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: logging.Discard(),
	}
}

// setup loads configuration and installs the logger, the assertion
// handler and the translation catalog it selects. Load failures are
// reported as warnings and fall back to defaults.
func (a *App) setup(ctx context.Context) {
	a.Close()

	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		a.warn(err)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Writer:  a.stderr,
		Prefix:  config.AppName,
		Level:   string(cfg.LogLevel),
		Verbose: a.verbose,
	})
	if err != nil {
		a.warn(err)
		logger, _ = logging.New(logging.Options{Writer: a.stderr, Prefix: config.AppName, Verbose: a.verbose})
	}
	a.logger = logger

	prevLogger := assert.Logger()
	assert.SetLogger(logger)
	a.restore = append(a.restore,
		func() { assert.SetLogger(prevLogger) },
		assert.SetHandler(assertHandler(cfg.AssertPolicy, logger)),
	)

	catalog, err := loadCatalog(cfg.Locale, string(cfg.CatalogPath))
	if err != nil {
		a.warn(err)
		catalog = i18n.NewCatalog()
	}
	a.restore = append(a.restore, i18n.SetDefault(catalog))

	logger.Debug("configured",
		"mode", buildmode.Current,
		"log_level", cfg.LogLevel,
		"assert_policy", cfg.AssertPolicy,
		"locale", catalog.Locale())
}

// Close restores the process-wide settings replaced by setup.
func (a *App) Close() {
	for i := len(a.restore) - 1; i >= 0; i-- {
		a.restore[i]()
	}
	a.restore = nil
}

func assertHandler(policy config.AssertPolicy, logger *log.Logger) assert.Handler {
	if policy == config.AssertPolicyLog {
		return assert.LogHandler(logger)
	}
	return assert.PanicHandler
}

// loadCatalog builds the translation catalog for locale, reading path
// when set.
func loadCatalog(locale, path string) (*i18n.Catalog, error) {
	if path == "" {
		c := i18n.NewCatalog()
		if err := c.SetLocale(locale); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("select locale").
				WithResource(locale).
				WithSuggestion("Use a BCP 47 tag such as de or pt-BR").
				WithIssue(issue.UnknownLocaleId).
				Wrap(err).
				BuildError()
		}
		return c, nil
	}

	c, err := i18n.LoadCatalog(locale, path)
	if err != nil {
		id := issue.CatalogLoadFailedId
		if errors.Is(err, i18n.ErrInvalidLocale) {
			id = issue.UnknownLocaleId
		}
		return nil, issue.NewErrorContext().
			WithOperation("load catalog").
			WithResource(path).
			WithSuggestion("Check the file's locale field and message keys").
			WithIssue(id).
			Wrap(err).
			BuildError()
	}
	return c, nil
}

// run adapts fn to a cobra RunE. In Debug builds a failed assertion that
// panics out of fn is reported as an internal error instead of crashing.
// Errors linked to an issue are followed by a pointer to `hostkit issue`.
func (a *App) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		buildmode.TryDebug(func() {
			err = fn(cmd, args)
		}, func(f *assert.Failure) {
			err = &ExitError{
				Code: ExitInternal,
				Err: issue.NewErrorContext().
					WithOperation("run " + cmd.Name()).
					WithIssue(issue.AssertionFailedId).
					Wrap(f).
					BuildError(),
			}
		})
		if id, ok := issue.Linked(err); ok {
			fmt.Fprintln(a.stderr, SubtitleStyle.Render(i18n.ExpandMessage("For details run:")+" hostkit issue "+id.String()))
		}
		return err
	}
}

// renderIssue writes the rendered issue to w.
func (a *App) renderIssue(w io.Writer, id issue.Id, style string) error {
	assert.That(!a.rendering, "issue rendering re-entered")
	defer scopeguard.Acquire(&a.rendering).Release()

	i := issue.Get(id)
	if i == nil {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("no issue %d", id)}
	}
	out, err := i.Render(style)
	if err != nil {
		return fmt.Errorf("render issue %s: %w", id, err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func (a *App) warn(err error) {
	fmt.Fprintln(a.stderr, WarningStyle.Render(i18n.ExpandMessage("Warning:"))+" "+formatErrorForDisplay(err, a.verbose))
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use Format, and a linked issue adds a pointer to
// `hostkit issue`.
func formatErrorForDisplay(err error, verboseMode bool) string {
	msg := err.Error()
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		msg = ae.Format(verboseMode)
	}
	if id, ok := issue.Linked(err); ok {
		msg += "\n\n" + i18n.ExpandMessage("For details run:") + " hostkit issue " + id.String()
	}
	return msg
}
