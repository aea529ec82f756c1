// Package yaml provides the YAML document parser, backed by
// gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kasane-go/kasane/document"
	"github.com/kasane-go/kasane/format"
)

// NewParser creates a new YAML parser.
func NewParser() document.Parser {
	return format.NewParser(document.FormatYAML, Parse)
}

// Parse decodes YAML bytes into a nested mapping.
//
// Empty/nil input and documents that decode to null are treated as an
// empty mapping. Integers decode as int, floats as float64.
func Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var result map[string]any
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if result == nil {
		return map[string]any{}, nil
	}
	return result, nil
}
