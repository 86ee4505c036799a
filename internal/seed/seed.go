// Package seed provides the label list embedded by the ingest workflow.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed law_specialties.json
var lawSpecialties []byte

// Default returns the bundled list of legal specialties in file order.
func Default() []string {
	labels, err := parse(lawSpecialties)
	if err != nil {
		panic(fmt.Sprintf("seed: bundled law_specialties.json is invalid: %v", err))
	}
	return labels
}

// Load reads a JSON array of labels from path, or returns Default when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	labels, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return labels, nil
}

func parse(data []byte) ([]string, error) {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("label list is empty")
	}
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return nil, fmt.Errorf("label %d is blank", i)
		}
	}
	return labels, nil
}
