// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	// ErrInvalidLocale is returned when a locale string is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrEnglishCatalog is returned when translations are added for English,
	// the source language of every message key.
	ErrEnglishCatalog = errors.New("english is the source language and takes no translations")
	// ErrEmptyKey is returned when a translation has an empty source text.
	ErrEmptyKey = errors.New("empty message key")
)

type (
	// Catalog holds translations for any number of locales plus the active
	// locale used by Translate. It is safe for concurrent use.
	Catalog struct {
		mu      sync.RWMutex
		builder *catalog.Builder
		// tags[0] is always English, the matcher's fallback.
		tags    []language.Tag
		matcher language.Matcher
		keys    map[language.Tag]map[string]struct{}
		active  language.Tag
	}

	// InvalidLocaleError names the rejected locale string.
	InvalidLocaleError struct {
		Locale string
		Cause  error
	}
)

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale %q: %v", e.Locale, e.Cause)
}

func (e *InvalidLocaleError) Unwrap() error { return ErrInvalidLocale }

// NewCatalog returns an empty catalog whose active locale is English.
func NewCatalog() *Catalog {
	tags := []language.Tag{language.English}
	return &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		tags:    tags,
		matcher: language.NewMatcher(tags),
		keys:    map[language.Tag]map[string]struct{}{},
		active:  language.English,
	}
}

// ParseLocale parses a BCP 47 locale such as "de", "pt-BR" or "de_AT".
// The empty string means English.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, &InvalidLocaleError{Locale: locale, Cause: err}
	}
	return tag, nil
}

// Add registers translations for locale. Keys are English source texts.
// Adding to a locale that already has translations merges them, later
// values winning. English locales are rejected. Either every entry is
// added or, on error, none is.
func (c *Catalog) Add(locale string, messages map[string]string) error {
	tag, err := ParseLocale(locale)
	if err != nil {
		return err
	}
	if IsEnglishTag(tag) {
		return fmt.Errorf("add %s translations: %w", tag, ErrEnglishCatalog)
	}

	// Sorted for deterministic error reporting. Translations are rendered
	// through a Printer, which treats them as format strings.
	keys := slices.Sorted(maps.Keys(messages))
	escaped := make(map[string]string, len(messages))
	scratch := catalog.NewBuilder()
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf("add %s translation: %w", tag, ErrEmptyKey)
		}
		escaped[key] = strings.ReplaceAll(messages[key], "%", "%%")
		if err := scratch.SetString(tag, key, escaped[key]); err != nil {
			return fmt.Errorf("add %s translation for %q: %w", tag, key, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if err := c.builder.SetString(tag, key, escaped[key]); err != nil {
			return fmt.Errorf("add %s translation for %q: %w", tag, key, err)
		}
	}

	known, ok := c.keys[tag]
	if !ok {
		known = make(map[string]struct{}, len(messages))
		c.keys[tag] = known
	}
	for _, key := range keys {
		known[key] = struct{}{}
	}
	if !slices.Contains(c.tags, tag) {
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	return nil
}

// SetLocale changes the active locale.
func (c *Catalog) SetLocale(locale string) error {
	tag, err := ParseLocale(locale)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.active = tag
	c.mu.Unlock()
	return nil
}

// Locale returns the active locale.
func (c *Catalog) Locale() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Locales lists the locales that carry translations, in the order they
// were added.
func (c *Catalog) Locales() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]language.Tag, 0, len(c.tags)-1)
	for _, tag := range c.tags {
		if _, ok := c.keys[tag]; ok {
			out = append(out, tag)
		}
	}
	return out
}

// IsEnglish reports whether the active locale is a variant of English.
func (c *Catalog) IsEnglish() bool {
	return IsEnglishTag(c.Locale())
}

// Translate returns the translation of msg for the active locale, or msg
// itself when the negotiated locale has no entry for it.
func (c *Catalog) Translate(msg string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, ok := c.negotiate(c.active)
	if !ok {
		return msg
	}
	if _, known := c.keys[tag][msg]; !known {
		return msg
	}
	return message.NewPrinter(tag, message.Catalog(c.builder)).Sprintf(msg)
}

// negotiate maps the requested tag onto one of the catalog's locales.
// Callers hold c.mu.
func (c *Catalog) negotiate(want language.Tag) (language.Tag, bool) {
	_, idx, conf := c.matcher.Match(want)
	if conf == language.No || idx == 0 {
		return language.Und, false
	}
	return c.tags[idx], true
}

// IsEnglishTag reports whether tag's base language is English.
func IsEnglishTag(tag language.Tag) bool {
	base, _ := tag.Base()
	english, _ := language.English.Base()
	return base == english
}
