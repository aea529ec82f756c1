package kasane

import (
	"errors"
	"fmt"
)

// ConfigError is implemented by every error returned from this package.
// Callers that only care about "did configuration loading fail" can match
// the whole taxonomy at once:
//
//	cfg, err := kasane.Load("config.yaml", "default.config.yaml")
//	var cerr kasane.ConfigError
//	if errors.As(err, &cerr) {
//	  fmt.Fprintln(os.Stderr, cerr)
//	  os.Exit(2)
//	}
type ConfigError interface {
	error
	configError()
}

// IsConfigError reports whether err (or any error it wraps) originates
// from this package.
func IsConfigError(err error) bool {
	var cerr ConfigError
	return errors.As(err, &cerr)
}

// MissingDefaultError is returned when the default document source is
// absent or decodes to an empty document. The default document is a hard
// precondition: it supplies both fallback values and the expected shape.
type MissingDefaultError struct {
	Path string
}

func (e *MissingDefaultError) Error() string {
	if e.Path == "" {
		return "default document is missing or empty"
	}
	return fmt.Sprintf("%s file is missing or empty", e.Path)
}

func (*MissingDefaultError) configError() {}

// ReadError is returned when a document file exists but cannot be read,
// for example because of a permission problem. A file that does not exist
// is reported differently: missing user documents are downgraded to a
// warning and missing default documents are a MissingDefaultError.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s file could not be read: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (*ReadError) configError() {}

// DecodeError is returned when a document source exists but its bytes do
// not parse under the format implied by its extension.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s file is corrupted: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (*DecodeError) configError() {}

// UnsupportedFormatError is returned when a document's file extension does
// not map to a known parser.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s file format is not supported", e.Path)
}

func (*UnsupportedFormatError) configError() {}

// InvalidSectionNameError is returned when strict identifier checking is
// enabled and a section name is not a valid bare identifier.
type InvalidSectionNameError struct {
	Section string
}

func (e *InvalidSectionNameError) Error() string {
	return fmt.Sprintf("section %q is not a valid identifier", e.Section)
}

func (*InvalidSectionNameError) configError() {}

// OptionError is returned when an option value cannot be processed, for
// example an ignored-sections entry that fails sanitization. It is
// reported before any merge work begins.
type OptionError struct {
	Option string
	Reason string
	Err    error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("failed parsing option %s: %s", e.Option, e.Reason)
}

func (e *OptionError) Unwrap() error { return e.Err }

func (*OptionError) configError() {}

// ValidationError is returned when the merged document does not conform to
// the shape derived from the defaults: a scalar of the wrong kind, a list
// with the wrong element kind, a section where a scalar was expected (or
// vice versa), or an extra section when extras are forbidden.
//
// Path is the dotted path of the offending value, e.g. "app.port".
type ValidationError struct {
	Path     string
	Expected string
	Actual   string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("validation failed at %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("validation failed at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (*ValidationError) configError() {}
