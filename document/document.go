// Package document defines the parsing boundary between the merge engine
// and concrete configuration formats.
//
// The engine itself is format-agnostic: it consumes nested mappings.
// Format packages (format/yaml, format/toml, format/json, format/jsonc)
// provide Parser implementations that decode raw bytes into such
// mappings.
package document

// Parser decodes raw document bytes into a nested mapping.
// Each format (YAML, TOML, JSON, JSONC) implements this interface.
type Parser interface {
	// Parse decodes data into a nested mapping. Empty or nil input yields
	// an empty mapping, not an error. Nested structures decode to
	// map[string]any and []any; scalars keep their decoded Go types.
	Parse(data []byte) (map[string]any, error)

	// Format returns the document format this parser handles.
	Format() DocumentFormat
}

// DocumentFormat represents the format of a configuration document.
type DocumentFormat string

const (
	// FormatYAML represents YAML format (using gopkg.in/yaml.v3).
	FormatYAML DocumentFormat = "yaml"

	// FormatTOML represents TOML format (using github.com/pelletier/go-toml/v2).
	FormatTOML DocumentFormat = "toml"

	// FormatJSON represents standard JSON (using github.com/goccy/go-json).
	FormatJSON DocumentFormat = "json"

	// FormatJSONC represents JSON with Comments (using github.com/tailscale/hujson).
	FormatJSONC DocumentFormat = "jsonc"
)
