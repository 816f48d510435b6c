package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for an environment
// configuration when none is given.
const DefaultConfigPath = ".ceq.yaml"

// Config describes an environment as it appears on disk.
type Config struct {
	Name         string   `yaml:"name"`
	Imports      []string `yaml:"imports"`
	Propositions []string `yaml:"propositions"`
}

// Load reads a YAML environment configuration and builds a Table from
// it. A missing or empty path yields the default environment: the
// if_then_else extension imported, no proposition symbols.
func Load(path string) (*Table, error) {
	if path == "" {
		return New([]string{"if_then_else"}, nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening environment config %s: %w", path, err)
	}
	defer f.Close()

	var config Config
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return nil, fmt.Errorf("error parsing environment config %s: %w", path, err)
	}

	return New(config.Imports, config.Propositions), nil
}

// WriteDefault creates a starter configuration file at path.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	config := Config{
		Name:    "ceq",
		Imports: []string{"if_then_else"},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling default config: %w", err)
	}
	return os.WriteFile(path, d, 0o644)
}
