package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the default tokens merged with the YAML file at path. An empty
// path yields the defaults.
func Load(path string) (Tokens, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tokens{}, fmt.Errorf("read theme file: %w", err)
	}
	override, err := Parse(data)
	if err != nil {
		return Tokens{}, err
	}
	return base.Merge(override), nil
}

// Parse decodes YAML token overrides.
func Parse(data []byte) (Tokens, error) {
	var t Tokens
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tokens{}, fmt.Errorf("parse theme: %w", err)
	}
	return t, nil
}
