package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "rtype.yaml"

// Sources reported by LoadRType.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRType loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.rtype/configs/rtype.yaml ->
// ./configs/rtype.yaml -> embedded default -> hardcoded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// other locations are skipped when unusable.
func LoadRType(customPath string) (RTypeConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RTypeConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RTypeConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := Parse(defaultRTypeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRTypeConfig(), SourceBuiltin, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (RTypeConfig, error) {
	cfg := DefaultRTypeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RTypeConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RTypeConfig{}, err
	}
	return cfg, nil
}

// Dir returns the per-user data directory (~/.rtype), or "" if the home
// directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rtype")
}

func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
