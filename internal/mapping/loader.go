package mapping

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"timetable-merge/internal/correlate"
)

// CurrentVersion is written into new decisions files.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML decisions file from the given path.
// A missing file yields an empty document.
func LoadFile(path string) (*DecisionsFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		df := &DecisionsFile{}
		applyDefaults(df)

		return df, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read decisions file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DecisionsFile.
func Parse(data []byte) (*DecisionsFile, error) {
	var df DecisionsFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse decisions YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DecisionsFile) {
	if df.Version == "" {
		df.Version = CurrentVersion
	}

	for i := range df.Classes {
		for j := range df.Classes[i].Correlations {
			d := &df.Classes[i].Correlations[j]
			if d.Source == "" {
				d.Source = correlate.SourcePersisted.String()
			}
		}
	}
}

// Marshal serializes a DecisionsFile to YAML.
func Marshal(df *DecisionsFile) ([]byte, error) {
	return yaml.Marshal(df)
}

// WriteFile writes a DecisionsFile to the given path.
func WriteFile(df *DecisionsFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal decisions: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write decisions file %s: %w", path, err)
	}

	return nil
}
