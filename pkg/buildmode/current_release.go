// SPDX-License-Identifier: MPL-2.0

//go:build !hostkit_debug && !hostkit_devel

package buildmode

// Current is the build mode this binary was compiled in.
const Current = Release
