package kasane

import "github.com/rs/zerolog"

// Option is a functional option for configuring Load and Merge.
type Option func(*options)

// options holds the resolved configuration for one merge/validate call.
// All flags are independent and composable.
type options struct {
	merge             bool
	ignoredSections   []string
	snakeCaseKeys     bool
	keywordPrefix     bool
	strictIdentifiers bool
	underscoredDashes bool
	validateTypes     bool
	allowExtra        bool
	warnExtra         bool
	mask              SensitiveMaskFunc
	logger            zerolog.Logger
}

// newOptions applies opts on top of the defaults.
func newOptions(opts []Option) *options {
	o := &options{
		merge:         true,
		validateTypes: true,
		allowExtra:    true,
		warnExtra:     true,
		mask:          defaultMask,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithoutMerge disables merging and validation entirely. Load then returns
// the user document as-is, and the default document is never read.
func WithoutMerge() Option {
	return func(o *options) {
		o.merge = false
	}
}

// WithIgnoredSections excludes the named sections from the merge and from
// validation, at any nesting depth. Ignored sections are neither taken
// from the defaults nor checked against the derived shape, and they never
// appear in the merged result.
//
// Names are raw (pre-sanitization) key names. An entry that is empty or
// that fails sanitization under the active options is reported as an
// OptionError before any merge work begins.
//
// Example:
//
//	cfg, err := kasane.Load("config.yaml", "default.config.yaml",
//	  kasane.WithIgnoredSections("environments"),
//	)
func WithIgnoredSections(names ...string) Option {
	return func(o *options) {
		o.ignoredSections = append(o.ignoredSections, names...)
	}
}

// WithSnakeCaseKeys converts section names from camel, Pascal or kebab
// case to lower snake case during the merge.
func WithSnakeCaseKeys() Option {
	return func(o *options) {
		o.snakeCaseKeys = true
	}
}

// WithKeywordPrefix prepends an underscore to section names that collide
// with Go reserved words, so the sanitized names stay usable as
// identifiers in generated code.
func WithKeywordPrefix() Option {
	return func(o *options) {
		o.keywordPrefix = true
	}
}

// WithStrictIdentifiers aborts the whole call with an
// InvalidSectionNameError when a section name is not a valid bare
// identifier (leading digit, punctuation, empty name).
func WithStrictIdentifiers() Option {
	return func(o *options) {
		o.strictIdentifiers = true
	}
}

// WithUnderscoredDashes replaces dashes in section names with
// underscores.
func WithUnderscoredDashes() Option {
	return func(o *options) {
		o.underscoredDashes = true
	}
}

// WithoutTypeValidation skips shape derivation and type checking
// entirely. Only the merge semantics apply.
func WithoutTypeValidation() Option {
	return func(o *options) {
		o.validateTypes = false
	}
}

// WithoutExtraSections makes keys that are present in the merged document
// but absent from the defaults' shape a fatal ValidationError. By default
// such keys are collected, logged and stripped from the result instead.
func WithoutExtraSections() Option {
	return func(o *options) {
		o.allowExtra = false
	}
}

// WithoutExtraWarnings drops extra sections silently instead of logging
// them.
func WithoutExtraWarnings() Option {
	return func(o *options) {
		o.warnExtra = false
	}
}

// WithLogger sets the logger used for merge, sanitization and validation
// events. The default is a no-op logger, which makes the engine silent.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	cfg, err := kasane.Load("config.yaml", "default.config.yaml",
//	  kasane.WithLogger(logger),
//	)
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSensitiveMask sets the function used to mask likely-sensitive
// values (passwords, tokens, keys) in log dumps. Passing nil disables
// masking, logging all values verbatim.
func WithSensitiveMask(mask SensitiveMaskFunc) Option {
	return func(o *options) {
		o.mask = mask
	}
}
