// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/hostkit/hostkit/pkg/cueutil"
)

//go:embed catalog_schema.cue
var catalogSchema string

// ErrUnsupportedFormat is returned by LoadFile for extensions other than
// .toml and .cue.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// File is one translation catalog file: a locale and its messages.
//
//	locale = "de"
//	[messages]
//	"Assertion failed" = "Zusicherung fehlgeschlagen"
type File struct {
	Locale   string            `toml:"locale" json:"locale"`
	Messages map[string]string `toml:"messages" json:"messages"`
}

// LoadTOML parses a TOML catalog file.
func LoadTOML(data []byte, filename string) (*File, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", filename, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if f.Locale == "" {
		return nil, fmt.Errorf("%s: missing locale", filename)
	}
	if _, err := ParseLocale(f.Locale); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

// LoadCUE parses a CUE catalog file and validates it against the embedded
// #Catalog schema.
func LoadCUE(data []byte, filename string) (*File, error) {
	res, err := cueutil.ParseAndDecode[File]([]byte(catalogSchema), data, "#Catalog", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	if _, err := ParseLocale(res.Value.Locale); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return res.Value, nil
}

// LoadFile reads a catalog file, choosing the parser by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return LoadTOML(data, path)
	case ".cue":
		return LoadCUE(data, path)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
}

// AddFile registers the translations of f.
func (c *Catalog) AddFile(f *File) error {
	return c.Add(f.Locale, f.Messages)
}

// LoadCatalog builds a catalog from the given files with locale as the
// active locale.
func LoadCatalog(locale string, paths ...string) (*Catalog, error) {
	c := NewCatalog()
	if err := c.SetLocale(locale); err != nil {
		return nil, err
	}
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		if err := c.AddFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return c, nil
}
