package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for latticelab.yml. The
// Extensions field is excluded since its contents are free-form.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type BaseConfig struct {
		Theme     string `yaml:"theme,omitempty" jsonschema:"description=Color theme name (kanagawa or terminal)"`
		Preset    string `yaml:"preset,omitempty" jsonschema:"description=Keybinding preset (vim or arrows)"`
		StartPage string `yaml:"start_page,omitempty" jsonschema:"description=Section title to open on launch"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "LatticeLab Configuration"
	schema.Description = "Schema for latticelab.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
