package stats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a statistics snapshot from a yaml file.
func Load(path string) (*DatasetStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}
	var ds DatasetStats
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse stats file %s: %w", path, err)
	}
	return &ds, nil
}

// Save writes a statistics snapshot as yaml.
func Save(path string, ds *DatasetStats) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
