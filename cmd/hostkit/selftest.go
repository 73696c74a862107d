// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkit/hostkit/internal/logging"
	"github.com/hostkit/hostkit/pkg/assert"
	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/bytesize"
	"github.com/hostkit/hostkit/pkg/enumrange"
	"github.com/hostkit/hostkit/pkg/i18n"
	"github.com/hostkit/hostkit/pkg/scopeguard"
)

var errProbe = errors.New("selftest probe")

type selfCheck struct {
	name string
	run  func() error
}

func selfChecks() []selfCheck {
	return []selfCheck{
		{"enumeration sentinel loop", checkSentinelLoop},
		{"scope guard", checkScopeGuard},
		{"exception switch", checkExceptionSwitch},
		{"assertion backend", checkAssertions},
		{"translation fallback", checkTranslationFallback},
		{"size round trip", checkSizes},
	}
}

func newSelfTestCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Exercise the foundation primitives in this binary",
		Long: `Run a short self-check of the enumeration, guard, build-mode switch,
assertion and translation primitives as compiled into this binary.`,
		Args: cobra.NoArgs,
		RunE: app.run(func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			failed := 0
			for _, c := range selfChecks() {
				if err := c.run(); err != nil {
					failed++
					fmt.Fprintf(w, "%s %s: %v\n", ErrorStyle.Render("FAIL"), c.name, err)
					continue
				}
				fmt.Fprintf(w, "%s   %s\n", SuccessStyle.Render("ok"), c.name)
			}
			if failed > 0 {
				return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%d selftest check(s) failed", failed)}
			}
			return nil
		}),
	}
}

func checkSentinelLoop() error {
	n := 0
	for m := enumrange.First[buildmode.Mode](); enumrange.NotEqual(m, enumrange.End); enumrange.Inc(&m) {
		if !enumrange.IsValid(m) {
			return fmt.Errorf("loop visited invalid mode %d", m)
		}
		n++
	}
	if n != enumrange.Len[buildmode.Mode]() {
		return fmt.Errorf("loop visited %d modes, want %d", n, enumrange.Len[buildmode.Mode]())
	}
	return nil
}

func checkScopeGuard() error {
	var busy bool
	func() {
		defer scopeguard.Acquire(&busy).Release()
		if !busy {
			panic("flag not set inside scope")
		}
	}()
	if busy {
		return errors.New("flag still set after normal exit")
	}

	_, ok := buildmode.Caught[error](func() {
		defer scopeguard.Acquire(&busy).Release()
		panic(errProbe)
	})
	if !ok {
		return errors.New("probe panic was not caught")
	}
	if busy {
		return errors.New("flag still set after panic")
	}
	return nil
}

func checkExceptionSwitch() error {
	intercepted := false
	_, escaped := buildmode.Caught[error](func() {
		buildmode.TryDebug(func() { panic(errProbe) }, func(error) { intercepted = true })
	})
	if intercepted != buildmode.DebugEnabled || escaped == buildmode.DebugEnabled {
		return fmt.Errorf("debug switch intercepted=%v escaped=%v in %s build", intercepted, escaped, buildmode.Current)
	}
	return nil
}

func checkAssertions() error {
	prevLogger := assert.Logger()
	assert.SetLogger(logging.Discard())
	defer assert.SetLogger(prevLogger)
	defer assert.SetHandler(assert.PanicHandler)()

	f, ok := buildmode.Caught[*assert.Failure](func() {
		assert.That(false, "selftest probe")
	})
	if !ok {
		return errors.New("failed assertion did not panic")
	}
	if !errors.Is(f, assert.ErrAssertion) || f.Description != "selftest probe" {
		return fmt.Errorf("unexpected failure %v", f)
	}
	return nil
}

func checkTranslationFallback() error {
	c := i18n.NewCatalog()
	if err := c.SetLocale("de"); err != nil {
		return err
	}
	if got := c.Translate("selftest probe"); got != "selftest probe" {
		return fmt.Errorf("missing translation returned %q", got)
	}
	return nil
}

func checkSizes() error {
	for _, s := range bytesize.All() {
		n, err := bytesize.Parse(bytesize.Format(s.Bytes))
		if err != nil {
			return err
		}
		if n != s.Bytes {
			return fmt.Errorf("%s: %s parsed back as %d", s.Name, bytesize.Format(s.Bytes), n)
		}
	}
	return nil
}
