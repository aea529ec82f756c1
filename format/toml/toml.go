// Package toml provides the TOML document parser, backed by
// github.com/pelletier/go-toml/v2.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/kasane-go/kasane/document"
	"github.com/kasane-go/kasane/format"
)

// NewParser creates a new TOML parser.
func NewParser() document.Parser {
	return format.NewParser(document.FormatTOML, Parse)
}

// Parse decodes TOML bytes into a nested mapping.
//
// Empty/nil input is treated as an empty mapping. Integers decode as
// int64, floats as float64.
func Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var result map[string]any
	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if result == nil {
		return map[string]any{}, nil
	}
	return result, nil
}
