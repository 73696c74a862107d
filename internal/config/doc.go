// SPDX-License-Identifier: MPL-2.0

// Package config loads hostkit's ambient policies using Viper with CUE as
// the file format.
//
// Configuration is read from $XDG_CONFIG_HOME/hostkit/config.cue (or the
// platform equivalent), validated against the embedded CUE schema
// (config_schema.cue), and merged over defaults. HOSTKIT_* environment
// variables override file values.
package config
