package config

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/chemtools/latticelab/errors"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a latticelab configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data with env var expansion and defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads the configuration with layered merging:
// 1. Global config (~/.config/latticelab/latticelab.yml) - base layer
// 2. Project config (latticelab.yml, searched upward from cwd)
// 3. Local override (latticelab.override.yml) - overrides all
//
// Missing files are fine at every layer; a fully-defaulted config is
// returned when none exist.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with layered merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	final := &Config{}

	// 1. Global config (optional)
	if globalPath := globalConfigPath(); globalPath != "" {
		if data, err := os.ReadFile(globalPath); err == nil {
			var global Config
			if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &global); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse global config").
					WithDetail("path", globalPath)
			}
			final = merge(final, &global)
		}
	}

	// 2. Project config (optional)
	if projectPath := FindConfigFile(startDir); projectPath != "" {
		data, err := os.ReadFile(projectPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read project config").
				WithDetail("path", projectPath)
		}
		var project Config
		if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &project); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
				WithDetail("path", projectPath)
		}
		final = merge(final, &project)

		// 3. Local override next to the project config (optional)
		overridePath := filepath.Join(filepath.Dir(projectPath), "latticelab.override.yml")
		if data, err := os.ReadFile(overridePath); err == nil {
			var override Config
			if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &override); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse override config").
					WithDetail("path", overridePath)
			}
			final = merge(final, &override)
		}
	}

	final.applyDefaults()
	return final, nil
}

// FindConfigFile searches for a latticelab config file from startDir up
// to the filesystem root. Returns "" when none is found.
func FindConfigFile(startDir string) string {
	configNames := []string{
		"latticelab.yml",
		"latticelab.yaml",
		".latticelab.yml",
		".latticelab.yaml",
	}

	dir := startDir
	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// merge overlays later config onto base. Scalar fields win when set;
// extension maps are merged key-by-key.
func merge(base, overlay *Config) *Config {
	out := *base
	if overlay.Theme != "" {
		out.Theme = overlay.Theme
	}
	if overlay.Preset != "" {
		out.Preset = overlay.Preset
	}
	if overlay.StartPage != "" {
		out.StartPage = overlay.StartPage
	}
	if len(overlay.Extensions) > 0 {
		if out.Extensions == nil {
			out.Extensions = make(map[string]interface{}, len(overlay.Extensions))
		} else {
			merged := make(map[string]interface{}, len(out.Extensions)+len(overlay.Extensions))
			for k, v := range out.Extensions {
				merged[k] = v
			}
			out.Extensions = merged
		}
		for k, v := range overlay.Extensions {
			out.Extensions[k] = v
		}
	}
	return &out
}

func globalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "latticelab", "latticelab.yml")
}

// expandEnvVars substitutes ${VAR} references with environment values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
