package config

import (
	"fmt"
	"os"
)

// LoadConfig reads and parses a pipeline.yaml file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline config %s: %w", path, err)
	}
	return ParseConfig(data)
}
