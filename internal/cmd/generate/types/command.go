// Package types provides the "generate types" subcommand.
//
// It reads a default configuration document, derives its shape, and emits
// a Go source file of struct types mirroring that shape - the typed
// counterpart of the stub files the configuration engine validates
// against at runtime.
package types

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kasane-go/kasane"
)

// Options holds the command-line options for the types generator.
type Options struct {
	Input             string
	Output            string
	TypeName          string
	PackageName       string
	SnakeCase         bool
	UnderscoredDashes bool
	KeywordPrefix     bool
	Debug             bool
}

// Run executes the types generation command.
func Run(args []string) error {
	fs := flag.NewFlagSet("generate types", flag.ExitOnError)

	var opts Options
	fs.StringVar(&opts.Input, "input", "default.config.yaml", "path to the default configuration document")
	fs.StringVar(&opts.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&opts.TypeName, "type", "Config", "name of the generated root struct type")
	fs.StringVar(&opts.PackageName, "package", "config", "package name of the generated file")
	fs.BoolVar(&opts.SnakeCase, "snake-case", false, "convert section names to snake case")
	fs.BoolVar(&opts.UnderscoredDashes, "underscore-dashes", false, "replace dashes in section names with underscores")
	fs.BoolVar(&opts.KeywordPrefix, "keyword-prefix", false, "prefix reserved words with an underscore")
	fs.BoolVar(&opts.Debug, "debug", false, "print debug messages")

	fs.Usage = func() {
		printHelp()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return runGenerate(opts)
}

func runGenerate(opts Options) error {
	defaults, err := kasane.ParseFile(opts.Input)
	if err != nil {
		return err
	}
	if len(defaults) == 0 {
		return &kasane.MissingDefaultError{Path: opts.Input}
	}

	sanitizeOpts := sanitizeOptions(opts)
	source, err := Generate(opts, defaults, sanitizeOpts)
	if err != nil {
		return fmt.Errorf("failed to generate types: %w", err)
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(source)
		return err
	}
	if err := os.WriteFile(opts.Output, source, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// sanitizeOptions maps the command-line flags to the engine options that
// control key sanitization, so the generated tags match the key names
// Load will produce under the same flags.
func sanitizeOptions(opts Options) []kasane.Option {
	var out []kasane.Option
	if opts.SnakeCase {
		out = append(out, kasane.WithSnakeCaseKeys())
	}
	if opts.UnderscoredDashes {
		out = append(out, kasane.WithUnderscoredDashes())
	}
	if opts.KeywordPrefix {
		out = append(out, kasane.WithKeywordPrefix())
	}
	if opts.Debug {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		out = append(out, kasane.WithLogger(logger))
	}
	return out
}

func printHelp() {
	fmt.Fprintln(os.Stderr, `kasane generate types - Generate Go struct types from a default configuration document

Usage:
  go tool kasane generate types [flags]

Flags:
  -input string
        path to the default configuration document (default "default.config.yaml")
  -output string
        output file path (default: stdout)
  -type string
        name of the generated root struct type (default "Config")
  -package string
        package name of the generated file (default "config")
  -snake-case
        convert section names to snake case
  -underscore-dashes
        replace dashes in section names with underscores
  -keyword-prefix
        prefix reserved words with an underscore
  -debug
        print debug messages

Example:
  go tool kasane generate types -input default.config.yaml -output config_gen.go -package main`)
}
