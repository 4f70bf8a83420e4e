// Package config loads unitcalc settings from a TOML file.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/born-ml/numeric/internal/fixed"
	"github.com/born-ml/numeric/internal/unit"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings shared by every unitcalc command.
//
// Example file:
//
//	precision   = 6
//	byte_order  = "le"
//	color       = "off"
//	locale      = "de-DE"
//	fixed_width = 64
type Config struct {
	Precision  int    `toml:"precision"`   // Fraction digits for floats, -1 for shortest
	ByteOrder  string `toml:"byte_order"`  // be, le or ne
	Color      string `toml:"color"`       // auto, on or off
	Locale     string `toml:"locale"`      // BCP 47 tag for digit grouping, empty for none
	FixedWidth int    `toml:"fixed_width"` // Default fixed-point width in bits
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Precision:  -1,
		ByteOrder:  "be",
		Color:      "auto",
		FixedWidth: 32,
	}
}

// Load reads path over the defaults. Keys that are not part of Config are
// rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Precision < -1 {
		return fmt.Errorf("%w: precision %d (must be -1 or more)", ErrInvalid, c.Precision)
	}
	switch c.ByteOrder {
	case "be", "le", "ne":
	default:
		return fmt.Errorf("%w: byte_order %q (must be be, le or ne)", ErrInvalid, c.ByteOrder)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: color %q (must be auto, on or off)", ErrInvalid, c.Color)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
		}
	}
	if _, err := fixed.ScaleFor(c.FixedWidth); err != nil {
		return fmt.Errorf("%w: fixed_width %d: %w", ErrInvalid, c.FixedWidth, err)
	}
	return nil
}

// Order returns the configured byte order.
func (c Config) Order() binary.ByteOrder {
	switch c.ByteOrder {
	case "le":
		return binary.LittleEndian
	case "ne":
		return unit.NativeOrder
	default:
		return binary.BigEndian
	}
}

// Tag returns the configured locale, or language.Und when none is set.
func (c Config) Tag() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}
