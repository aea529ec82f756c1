// Package format provides common utilities for document format
// implementations.
package format

import "github.com/kasane-go/kasane/document"

// ParseFunc is a function that parses bytes into a nested mapping.
type ParseFunc func([]byte) (map[string]any, error)

// NewParser creates a Parser from the given format and parse function.
//
// Example:
//
//	parser := format.NewParser(document.FormatYAML, yaml.Parse)
func NewParser(fmt document.DocumentFormat, parse ParseFunc) document.Parser {
	return &parser{
		format:    fmt,
		parseFunc: parse,
	}
}

// parser implements document.Parser using the provided configuration.
type parser struct {
	format    document.DocumentFormat
	parseFunc ParseFunc
}

// Ensure parser implements the document.Parser interface.
var _ document.Parser = (*parser)(nil)

// Parse implements the document.Parser interface.
func (p *parser) Parse(data []byte) (map[string]any, error) {
	return p.parseFunc(data)
}

// Format implements the document.Parser interface.
func (p *parser) Format() document.DocumentFormat {
	return p.format
}
