// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// DirEnv relocates the configuration directory, e.g. for portable installs.
const DirEnv = EnvPrefix + "_CONFIG_DIR"

// dirOverride takes precedence over DirEnv and the platform directory.
var dirOverride atomic.Pointer[string]

// SetConfigDirOverride pins ConfigDir to dir until Reset. Tests use it to
// avoid touching the real user configuration.
func SetConfigDirOverride(dir string) {
	dirOverride.Store(&dir)
}

// Reset clears the override set by SetConfigDirOverride.
func Reset() {
	dirOverride.Store(nil)
}

// ConfigDir returns the hostkit configuration directory. In order: the
// override, $HOSTKIT_CONFIG_DIR, then the platform user config directory
// (%AppData%, ~/Library/Application Support or $XDG_CONFIG_HOME with a
// ~/.config fallback) joined with AppName.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if p := dirOverride.Load(); p != nil && *p != "" {
		return *p, nil
	}
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// FilePath returns the default config file path inside ConfigDir.
func FilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// resolveDir prefers an explicit provider directory over ConfigDir.
func resolveDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return ConfigDir()
}
