package kasane

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kasane-go/kasane/confmap"
	"github.com/kasane-go/kasane/document"
	jsonformat "github.com/kasane-go/kasane/format/json"
	jsoncformat "github.com/kasane-go/kasane/format/jsonc"
	tomlformat "github.com/kasane-go/kasane/format/toml"
	yamlformat "github.com/kasane-go/kasane/format/yaml"
)

// Load reads the user document at configPath and the default document at
// defaultPath, merges and validates them, and returns a dotted-path
// accessible view of the result.
//
// The parser is selected by file extension (.yaml/.yml, .toml, .json,
// .jsonc). A missing user document is not an error: a warning is logged
// and the defaults alone populate the result. A missing or empty default
// document is fatal.
//
// Example:
//
//	cfg, err := kasane.Load("config.yaml", "default.config.yaml",
//	  kasane.WithSnakeCaseKeys(),
//	)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	host, err := cfg.String("database.host")
func Load(configPath, defaultPath string, opts ...Option) (confmap.Map, error) {
	o := newOptions(opts)

	user, err := readUserDocument(configPath, o.logger)
	if err != nil {
		return nil, err
	}

	if !o.merge {
		return confmap.New(user), nil
	}

	defaults, err := readDefaultDocument(defaultPath, o.logger)
	if err != nil {
		return nil, err
	}

	e, err := newEngine(o)
	if err != nil {
		return nil, err
	}
	merged, err := e.merge(user, defaults)
	if err != nil {
		return nil, err
	}
	return confmap.New(merged), nil
}

// ParseFile reads and decodes a single configuration document, selecting
// the parser by file extension.
func ParseFile(path string) (map[string]any, error) {
	parser, err := parserForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// readUserDocument loads the user document. A file that does not exist is
// downgraded to an empty document with a warning.
func readUserDocument(path string, log zerolog.Logger) (map[string]any, error) {
	parser, err := parserForPath(path)
	if err != nil {
		log.Error().Str("file", path).Msg("config file format is not supported")
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", path).Msg("config file not found, using defaults")
		return map[string]any{}, nil
	}
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed reading config file")
		return nil, &ReadError{Path: path, Err: err}
	}

	doc, err := parser.Parse(data)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("config file is corrupted")
		return nil, &DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// readDefaultDocument loads the default document. Absence or emptiness is
// fatal: the defaults carry the expected shape of the configuration.
func readDefaultDocument(path string, log zerolog.Logger) (map[string]any, error) {
	parser, err := parserForPath(path)
	if err != nil {
		log.Error().Str("file", path).Msg("default config file format is not supported")
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Error().Str("file", path).Msg("default config file is missing")
		return nil, &MissingDefaultError{Path: path}
	}
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed reading default config file")
		return nil, &ReadError{Path: path, Err: err}
	}

	doc, err := parser.Parse(data)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("default config file is corrupted")
		return nil, &DecodeError{Path: path, Err: err}
	}
	if len(doc) == 0 {
		log.Error().Str("file", path).Msg("default config file is empty")
		return nil, &MissingDefaultError{Path: path}
	}
	return doc, nil
}

// parserForPath selects a document parser by file extension.
func parserForPath(path string) (document.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlformat.NewParser(), nil
	case ".toml":
		return tomlformat.NewParser(), nil
	case ".json":
		return jsonformat.NewParser(), nil
	case ".jsonc":
		return jsoncformat.NewParser(), nil
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}
