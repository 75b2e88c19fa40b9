package config

import (
	"github.com/mitchellh/mapstructure"

	"github.com/chemtools/latticelab/errors"
)

// Config is the parsed representation of a latticelab.yml file.
//
// Only the UI-facing knobs are first-class fields; anything else a tool
// wants to store (e.g. a "logging" section) lives in Extensions and is
// decoded on demand via UnmarshalExtension.
type Config struct {
	// Theme selects the color palette for terminal interfaces.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme for terminal interfaces,enum=kanagawa,enum=terminal,default=kanagawa"`

	// Preset selects the keybinding style.
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty" jsonschema:"description=Keybinding preset: vim (default) or arrows,enum=vim,enum=arrows,default=vim"`

	// StartPage names the page the TUI opens on.
	StartPage string `yaml:"start_page,omitempty" json:"start_page,omitempty" jsonschema:"description=Page the learning TUI opens on (e.g. 'Theory & Concepts')"`

	// Extensions holds tool-specific sections that are not part of the
	// core schema (e.g. "logging").
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// UnmarshalExtension decodes a named extension section into out.
// A missing section is not an error; out is left untouched.
func (c *Config) UnmarshalExtension(name string, out interface{}) error {
	if c == nil || c.Extensions == nil {
		return nil
	}
	raw, ok := c.Extensions[name]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "yaml",
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to build extension decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode '"+name+"' section")
	}
	return nil
}

// applyDefaults fills in unset fields with their defaults.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "kanagawa"
	}
	if c.Preset == "" {
		c.Preset = "vim"
	}
}
