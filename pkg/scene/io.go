package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Load reads and validates a scene description from a YAML file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	sc, err := Build(&spec)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", path, err)
	}
	return sc, nil
}
