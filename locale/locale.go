// Package locale holds the lookup tables the word and internet pickers draw
// from, and resolves partial locales against a fallback once, at load time.
package locale

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrLoad indicates a locale file could not be read or decoded.
var ErrLoad = errors.New("locale: cannot load locale")

// ErrUnknown indicates a locale name with no built-in table.
var ErrUnknown = errors.New("locale: unknown locale")

// Syntax drives syllable generation.
type Syntax struct {
	Consonants string `mapstructure:"consonants"`
	Vowels     string `mapstructure:"vowels"`
}

// Internet holds internet-related pools.
type Internet struct {
	DomainSuffix []string `mapstructure:"domain_suffix"`
}

// Locale is a fully or partially populated table set.
type Locale struct {
	Title    string   `mapstructure:"title"`
	Syntax   Syntax   `mapstructure:"syntax"`
	Internet Internet `mapstructure:"internet"`
}

// En returns the default English locale.
func En() Locale {
	return Locale{
		Title: "English",
		Syntax: Syntax{
			// consonants except hard to speak ones
			Consonants: "bcdfghjklmnprstvwz",
			Vowels:     "aeiou",
		},
		Internet: Internet{
			DomainSuffix: []string{"com", "biz", "info", "name", "net", "org"},
		},
	}
}

// Lookup returns the built-in locale called name.
func Lookup(name string) (Locale, error) {
	switch name {
	case "", "en":
		return En(), nil
	default:
		return Locale{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}
}

// Resolve returns a locale in which every field of specific that is empty is
// taken from fallback. Pickers use the result as is and never merge per call.
func Resolve(specific, fallback Locale) Locale {
	out := specific
	if out.Title == "" {
		out.Title = fallback.Title
	}
	if out.Syntax.Consonants == "" {
		out.Syntax.Consonants = fallback.Syntax.Consonants
	}
	if out.Syntax.Vowels == "" {
		out.Syntax.Vowels = fallback.Syntax.Vowels
	}
	if len(out.Internet.DomainSuffix) == 0 {
		out.Internet.DomainSuffix = append([]string(nil), fallback.Internet.DomainSuffix...)
	}

	return out
}

// LoadFile reads a locale from a YAML, JSON or TOML file and resolves it
// against En.
func LoadFile(path string) (Locale, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Locale{}, fmt.Errorf("LoadFile(%s): %w: %w", path, ErrLoad, err)
	}

	var l Locale
	if err := v.Unmarshal(&l); err != nil {
		return Locale{}, fmt.Errorf("LoadFile(%s): %w: %w", path, ErrLoad, err)
	}

	return Resolve(l, En()), nil
}
