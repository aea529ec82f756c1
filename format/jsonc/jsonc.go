// Package jsonc provides the JSONC (JSON with comments) document parser.
//
// Comments and trailing commas are stripped via github.com/tailscale/hujson
// before decoding with the JSON parser.
package jsonc

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/kasane-go/kasane/document"
	"github.com/kasane-go/kasane/format"
	"github.com/kasane-go/kasane/format/json"
)

// NewParser creates a new JSONC parser.
func NewParser() document.Parser {
	return format.NewParser(document.FormatJSONC, Parse)
}

// Parse decodes JSONC bytes into a nested mapping.
//
// Empty/nil input is treated as an empty mapping.
func Parse(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	v, err := hujson.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSONC: %w", err)
	}

	// Standardize to remove comments and trailing commas for decoding
	v.Standardize()

	return json.Parse(v.Pack())
}
