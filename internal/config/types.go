// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hostkit/hostkit/pkg/i18n"
)

const (
	// LogLevelDebug logs everything.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level of release and devel builds.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// AssertPolicyPanic logs a failed assertion and panics with it.
	AssertPolicyPanic AssertPolicy = "panic"
	// AssertPolicyLog logs a failed assertion and continues.
	AssertPolicyLog AssertPolicy = "log"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidAssertPolicy is returned when an AssertPolicy value is not recognized.
	ErrInvalidAssertPolicy = errors.New("invalid assert policy")
	// ErrInvalidCatalogPath is returned when a CatalogPath value is whitespace-only.
	ErrInvalidCatalogPath = errors.New("invalid catalog path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel names the minimum level written by the CLI logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// AssertPolicy selects the process-wide assertion handler.
	AssertPolicy string

	// InvalidAssertPolicyError is returned when an AssertPolicy value is not recognized.
	// It wraps ErrInvalidAssertPolicy for errors.Is() compatibility.
	InvalidAssertPolicyError struct {
		Value AssertPolicy
	}

	// CatalogPath is the path of a translation catalog file. Empty means
	// no catalog.
	CatalogPath string

	// InvalidCatalogPathError is returned when a CatalogPath is whitespace-only.
	InvalidCatalogPathError struct {
		Value CatalogPath
	}

	// Config holds the application configuration.
	Config struct {
		// LogLevel is the CLI logger's minimum level.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// AssertPolicy selects what a failed assertion does.
		AssertPolicy AssertPolicy `json:"assert_policy" mapstructure:"assert_policy"`
		// Locale is the BCP 47 locale for user-facing messages.
		Locale string `json:"locale" mapstructure:"locale"`
		// CatalogPath is loaded into the process-wide translation catalog.
		CatalogPath CatalogPath `json:"catalog_path" mapstructure:"catalog_path"`
	}

	// InvalidConfigError collects every field error of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no file is present.
// LogLevel is left empty so the logger picks the build's default level.
func DefaultConfig() *Config {
	return &Config{
		AssertPolicy: AssertPolicyPanic,
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
// The empty value is valid and means the build's default level.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the AssertPolicy.
func (p AssertPolicy) String() string { return string(p) }

// IsValid returns whether the AssertPolicy is one of the defined policies.
// The empty value is valid and means AssertPolicyPanic.
func (p AssertPolicy) IsValid() (bool, []error) {
	switch p {
	case "", AssertPolicyPanic, AssertPolicyLog:
		return true, nil
	default:
		return false, []error{&InvalidAssertPolicyError{Value: p}}
	}
}

// Error implements the error interface for InvalidAssertPolicyError.
func (e *InvalidAssertPolicyError) Error() string {
	return fmt.Sprintf("invalid assert policy %q (valid: panic, log)", e.Value)
}

// Unwrap returns ErrInvalidAssertPolicy for errors.Is() compatibility.
func (e *InvalidAssertPolicyError) Unwrap() error { return ErrInvalidAssertPolicy }

// String returns the string representation of the CatalogPath.
func (p CatalogPath) String() string { return string(p) }

// IsValid returns whether the CatalogPath is empty or non-blank.
func (p CatalogPath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidCatalogPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCatalogPathError.
func (e *InvalidCatalogPathError) Error() string {
	return fmt.Sprintf("invalid catalog path %q: must not be blank", e.Value)
}

// Unwrap returns ErrInvalidCatalogPath for errors.Is() compatibility.
func (e *InvalidCatalogPathError) Unwrap() error { return ErrInvalidCatalogPath }

// IsValid returns whether every Config field is valid.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.AssertPolicy.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if _, err := i18n.ParseLocale(c.Locale); err != nil {
		errs = append(errs, err)
	}
	if valid, fieldErrs := c.CatalogPath.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
