// Package config defines core configuration types for uncrustify.
// These types are pure data structures with no dependency on the loader.
package config

// ColorMode controls colorized output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DumpConfig controls which columns the chunk dump renders.
type DumpConfig struct {
	ShowFlags  bool `yaml:"show_flags"`
	ShowParent bool `yaml:"show_parent"`
	ShowLevel  bool `yaml:"show_level"`
}

// Config is the resolved tool configuration.
type Config struct {
	// Languages forces the active language set ("cpp", "c,oc", ...).
	// Empty means detect per file.
	Languages string `yaml:"languages"`

	// Color selects colorized output: auto, always, never.
	Color ColorMode `yaml:"color"`

	// Dump configures the chunk dump output.
	Dump DumpConfig `yaml:"dump"`

	// Passes enables the classification passes after lexing.
	Passes bool `yaml:"passes"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
		Dump: DumpConfig{
			ShowFlags:  true,
			ShowParent: true,
			ShowLevel:  true,
		},
		Passes: true,
	}
}

// Clone returns a deep copy, nil-safe.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
