// SPDX-License-Identifier: MPL-2.0

// Package i18n is the translation backend used for user-facing text.
//
// Messages are keyed by their English text. A Catalog stores translations
// per locale on top of golang.org/x/text/catalog and negotiates the active
// locale with a language.Matcher, so a "de-AT" locale is served by a "de"
// catalog. Lookups that find no translation return the English text.
//
// The process-wide catalog is swapped atomically with SetDefault; the
// package-level GetTranslation, ExpandMessage and IsEnglish read it.
package i18n
