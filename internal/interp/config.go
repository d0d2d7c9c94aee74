package interp

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is optional host configuration, loadable from YAML, letting a
// deployment override the startup banner or seed extra named constants
// without touching code.
type Config struct {
	Banner    string             `yaml:"banner"`
	Constants map[string]float64 `yaml:"constants"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
