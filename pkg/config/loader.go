package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML payload into a Config. Unknown keys are ignored so
// documents can carry deployment metadata alongside form configuration.
func Parse(raw []byte) (Config, error) {
	if len(raw) == 0 {
		return Config{}, errors.New("config: payload is empty")
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config: path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}
