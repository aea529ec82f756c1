// Package json provides the JSON document parser, backed by
// github.com/goccy/go-json.
package json

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/kasane-go/kasane/document"
	"github.com/kasane-go/kasane/format"
)

// NewParser creates a new JSON parser.
func NewParser() document.Parser {
	return format.NewParser(document.FormatJSON, Parse)
}

// Parse decodes JSON bytes into a nested mapping.
//
// Empty/nil input is treated as an empty mapping. Numbers are decoded
// through json.Number and normalized afterwards: integral numbers become
// int64, everything else float64. Plain decoding would turn every number
// into float64 and defeat strict integer validation.
func Parse(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	decoder := gojson.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var result map[string]any
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if result == nil {
		return map[string]any{}, nil
	}
	return normalizeMap(result), nil
}

func normalizeMap(m map[string]any) map[string]any {
	for key, value := range m {
		m[key] = normalizeValue(value)
	}
	return m
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeMap(v)
	case []any:
		for i, item := range v {
			v[i] = normalizeValue(item)
		}
		return v
	case gojson.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return value
	}
}
