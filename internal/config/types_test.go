// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/hostkit/hostkit/pkg/i18n"
)

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value LogLevel
		want  bool
	}{
		{"", true},
		{LogLevelDebug, true},
		{LogLevelInfo, true},
		{LogLevelWarn, true},
		{LogLevelError, true},
		{"trace", false},
		{"INFO", false},
	}
	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.want {
			t.Errorf("LogLevel(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
		}
		if !valid {
			if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidLogLevel) {
				t.Errorf("LogLevel(%q) errors = %v, want one ErrInvalidLogLevel", tt.value, errs)
			}
		}
	}
}

func TestAssertPolicy_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value AssertPolicy
		want  bool
	}{
		{"", true},
		{AssertPolicyPanic, true},
		{AssertPolicyLog, true},
		{"ignore", false},
	}
	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.want {
			t.Errorf("AssertPolicy(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
		}
		if !valid {
			var ape *InvalidAssertPolicyError
			if len(errs) != 1 || !errors.As(errs[0], &ape) || ape.Value != tt.value {
				t.Errorf("AssertPolicy(%q) errors = %v", tt.value, errs)
			}
		}
	}
}

func TestCatalogPath_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []CatalogPath{"", "de.toml", "/etc/hostkit/de.cue"} {
		if valid, errs := p.IsValid(); !valid {
			t.Errorf("CatalogPath(%q) should be valid, got %v", p, errs)
		}
	}
	valid, errs := CatalogPath("  \t").IsValid()
	if valid || len(errs) != 1 || !errors.Is(errs[0], ErrInvalidCatalogPath) {
		t.Errorf("blank CatalogPath: valid=%v errs=%v", valid, errs)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("DefaultConfig() should be valid, got %v", errs)
	}

	cfg := Config{LogLevel: "loud", AssertPolicy: "ignore", Locale: "!!", CatalogPath: " "}
	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected invalid config")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("errs = %v, want one ErrInvalidConfig", errs)
	}

	var ice *InvalidConfigError
	if !errors.As(errs[0], &ice) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	wantSentinels := []error{ErrInvalidLogLevel, ErrInvalidAssertPolicy, i18n.ErrInvalidLocale, ErrInvalidCatalogPath}
	if len(ice.FieldErrors) != len(wantSentinels) {
		t.Fatalf("got %d field errors, want %d: %v", len(ice.FieldErrors), len(wantSentinels), ice.FieldErrors)
	}
	for i, want := range wantSentinels {
		if !errors.Is(ice.FieldErrors[i], want) {
			t.Errorf("FieldErrors[%d] = %v, want %v", i, ice.FieldErrors[i], want)
		}
	}
}
