// SPDX-License-Identifier: MPL-2.0

package i18n

import "sync/atomic"

var defaultCatalog atomic.Pointer[Catalog]

func init() {
	defaultCatalog.Store(NewCatalog())
}

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog.Load()
}

// SetDefault installs c as the process-wide catalog and returns a function
// restoring the previous one. A nil c installs an empty English catalog.
func SetDefault(c *Catalog) (restore func()) {
	if c == nil {
		c = NewCatalog()
	}
	prev := defaultCatalog.Swap(c)
	return func() { defaultCatalog.Store(prev) }
}

// GetTranslation looks message up in the process-wide catalog for its
// active locale, falling back to message.
func GetTranslation(message string) string {
	return Default().Translate(message)
}

// ExpandMessage returns englishText unchanged when the active locale is
// English, and its translation otherwise.
func ExpandMessage(englishText string) string {
	if IsEnglish() {
		return englishText
	}
	return GetTranslation(englishText)
}

// IsEnglish reports whether the process-wide catalog's active locale is
// English.
func IsEnglish() bool {
	return Default().IsEnglish()
}

// Mark tags s as translatable text without translating it. Use it for
// strings stored ahead of time and passed through ExpandMessage later.
func Mark(s string) string { return s }
