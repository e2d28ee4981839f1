package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/health-planner/internal/types"
)

// readingsDocument is the on-disk shape of a readings input file.
type readingsDocument struct {
	Gender   string         `json:"gender,omitempty"`
	Readings types.Readings `json:"readings"`
}

// loadReadings reads a readings JSON file. A missing or unrecognized gender
// falls back to the gender-neutral reference data.
func loadReadings(path string) (types.Readings, types.Gender, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.GenderDefault, fmt.Errorf("failed to read readings file %s: %w", path, err)
	}

	var doc readingsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, types.GenderDefault, fmt.Errorf("failed to parse readings JSON: %w", err)
	}
	if len(doc.Readings) == 0 {
		return nil, types.GenderDefault, fmt.Errorf("readings file %s contains no readings", path)
	}

	return doc.Readings, types.ParseGender(doc.Gender), nil
}

// loadPreferences reads an optional preferences JSON file.
func loadPreferences(path string) (*types.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}

	var prefs types.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences JSON: %w", err)
	}
	return &prefs, nil
}

// writeJSON pretty-prints v to the given path, or to stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
