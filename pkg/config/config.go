package config

import (
	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/errors"
)

// Output formats accepted by output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatHTML = "html"
)

// Config is the merged configuration of one vardump run.
type Config struct {
	Dump    Dump    `koanf:"dump"`
	Filter  Filter  `koanf:"filter"`
	Output  Output  `koanf:"output"`
	Logging Logging `koanf:"logging"`

	// Sources lists the files that were merged, lowest priority first.
	Sources []string `koanf:"-"`
}

// Dump holds the defaults of every dump call.
type Dump struct {
	Title      string `koanf:"title"`
	MaxDepth   int    `koanf:"max_depth"`
	ANSIColors bool   `koanf:"ansi_colors"`
}

// Filter holds the blocked type and member patterns.
type Filter struct {
	BlockedTypes   []string `koanf:"blocked_types"`
	BlockedMembers []string `koanf:"blocked_members"`
}

// Output selects how the CLI presents dumps.
type Output struct {
	Format string `koanf:"format"`
	Styles string `koanf:"styles"`
}

// Logging configures the diagnostic log.
type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if c.Dump.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigValid, "dump.max_depth must not be negative, got %d", c.Dump.MaxDepth).
			WithDetail("key", "dump.max_depth")
	}
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatHTML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Logging.Verbosity < 0 {
		return errors.New(errors.ErrConfigValid, "logging.verbosity must not be negative").
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// DumpOptions converts the configuration into the options of one dump call.
// The output mode is left to the caller, which resolves Output.Format.
// The filter lists are copied so callers may change them freely.
func (c *Config) DumpOptions() dump.Options {
	return dump.Options{
		Title:              c.Dump.Title,
		MaxDepth:           c.Dump.MaxDepth,
		ANSIColors:         c.Dump.ANSIColors,
		BlockedTypeNames:   clone(c.Filter.BlockedTypes),
		BlockedMemberNames: clone(c.Filter.BlockedMembers),
	}
}

// clone keeps nil and empty apart: an empty list blocks nothing, nil selects the defaults.
func clone(list []string) []string {
	if list == nil {
		return nil
	}
	return append([]string{}, list...)
}
