// SPDX-License-Identifier: MPL-2.0

//go:build hostkit_devel && !hostkit_debug

package buildmode

// Current is the build mode this binary was compiled in.
const Current = Devel
