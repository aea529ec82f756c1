package kasane

import (
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/kasane-go/kasane/container"
)

// Merge combines a user document with a default document and validates
// the result against the shape implied by the defaults.
//
// For every key of the default document, the user's value wins whenever
// the user supplied a non-nil value; missing or nil entries are filled in
// from the defaults under their sanitized key names. Nested mappings are
// merged recursively. Lists are never merged element-wise: a list
// supplied by the user replaces the default list wholesale.
//
// Keys from both documents are sanitized before values meet. When
// sanitization maps two keys to the same name, the value already stored
// under the sanitized name wins and the collision is logged.
//
// Both documents are deep-copied on entry; the caller's maps are never
// modified. The default document must be non-empty. On any failure Merge
// returns nil and an error implementing ConfigError; no partial result is
// ever returned.
//
// Example:
//
//	merged, err := kasane.Merge(user, defaults,
//	  kasane.WithSnakeCaseKeys(),
//	  kasane.WithIgnoredSections("environments"),
//	)
func Merge(user, defaults map[string]any, opts ...Option) (map[string]any, error) {
	o := newOptions(opts)
	if !o.merge {
		return container.DeepCopyMap(user), nil
	}
	e, err := newEngine(o)
	if err != nil {
		return nil, err
	}
	return e.merge(user, defaults)
}

// engine holds the per-call state of one merge/validate run. Engines are
// created fresh for every call and discarded at return; nothing is cached
// across calls.
type engine struct {
	opts   *options
	san    *sanitizer
	ignore ignoreSet
	log    zerolog.Logger
}

// newEngine builds the sanitizer and the ignore set. Ignore-set failures
// surface here, before any document is touched.
func newEngine(o *options) (*engine, error) {
	san := newSanitizer(o)
	ignore, err := newIgnoreSet(o.ignoredSections, san)
	if err != nil {
		o.logger.Error().Err(err).Msg("failed parsing ignored sections")
		return nil, err
	}
	return &engine{
		opts:   o,
		san:    san,
		ignore: ignore,
		log:    o.logger,
	}, nil
}

// merge runs the full pipeline: filter ignored subtrees, sanitize keys on
// both sides, merge defaults into the user document, validate against the
// derived shape, strip extras, and log the overwritten-keys record.
func (e *engine) merge(user, defaults map[string]any) (map[string]any, error) {
	if len(defaults) == 0 {
		return nil, &MissingDefaultError{}
	}

	merged := container.DeepCopyMap(user)
	if merged == nil {
		merged = map[string]any{}
	}
	def := container.DeepCopyMap(defaults)

	e.ignore.filter(merged, e.log)
	e.ignore.filter(def, e.log)

	// Snapshot of what the user supplied, kept for the overwritten-keys
	// record. Taken after filtering so ignored sections never show up in it.
	snapshot := container.DeepCopyMap(merged)

	if err := e.sanitizeKeys(merged, nil); err != nil {
		return nil, err
	}
	if err := e.sanitizeKeys(def, nil); err != nil {
		return nil, err
	}

	e.mergeInto(merged, def, nil)

	if e.opts.validateTypes {
		shape := DeriveShape(def)
		extras, err := e.validate(merged, shape)
		if err != nil {
			return nil, err
		}
		e.stripExtras(merged, snapshot, extras)
	}

	e.logOverwritten(snapshot, merged)
	e.log.Debug().Msgf("resulting config:\n%s", spew.Sdump(redactMap(merged, e.opts.mask)))
	return merged, nil
}

// sanitizeKeys relocates every key of doc to its sanitized name, at every
// depth, including mappings inside lists. When the sanitized name is
// already taken the existing value wins and the raw-named entry is
// dropped. A sanitization failure aborts the whole call.
func (e *engine) sanitizeKeys(doc map[string]any, path []string) error {
	for _, key := range sortedKeys(doc) {
		sanitized, err := e.san.Sanitize(key)
		if err != nil {
			return err
		}
		if sanitized != key {
			if _, exists := doc[sanitized]; exists {
				e.log.Debug().Str("section", dotted(append(path, sanitized))).
					Msg("section already exists, skipping")
				delete(doc, key)
				continue
			}
			doc[sanitized] = doc[key]
			delete(doc, key)
		}
		if err := e.sanitizeValueKeys(doc[sanitized], append(path, sanitized)); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) sanitizeValueKeys(value any, path []string) error {
	switch v := value.(type) {
	case map[string]any:
		return e.sanitizeKeys(v, path)
	case []any:
		for _, item := range v {
			if err := e.sanitizeValueKeys(item, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeInto fills dst in from def. Both sides have already been filtered
// and sanitized, so keys compare directly. Keys are visited in sorted
// order to keep log output and collision handling deterministic.
func (e *engine) mergeInto(dst, def map[string]any, path []string) {
	for _, key := range sortedKeys(def) {
		defValue := def[key]
		current, exists := dst[key]

		switch {
		case !exists || current == nil:
			// def is an exclusively owned copy, so its subtrees can be
			// moved into dst without another deep copy.
			dst[key] = defValue
			e.log.Debug().Str("section", dotted(append(path, key))).
				Interface("value", defValue).
				Msg("section taken from default")

		case isMapping(defValue):
			if currentMap, ok := current.(map[string]any); ok {
				e.mergeInto(currentMap, defValue.(map[string]any), append(path, key))
			}
			// A user-supplied scalar or list under a section key is left
			// alone here; validation reports the structural mismatch.

		default:
			// User supplied a non-nil scalar or list: user wins. Lists are
			// deliberately not merged element-wise.
		}
	}
}

// stripExtras removes keys the shape did not recognize from both the
// merged document and the snapshot, then logs them unless warnings are
// disabled.
func (e *engine) stripExtras(merged, snapshot map[string]any, extras [][]string) {
	if len(extras) == 0 {
		return
	}
	removed := make(map[string]any, len(extras))
	for _, path := range extras {
		if value, ok := deletePath(merged, path); ok {
			removed[dotted(path)] = value
		}
		deletePath(snapshot, path)
	}
	if e.opts.warnExtra {
		e.log.Warn().Msgf("the following extra sections will be ignored:\n%s",
			spew.Sdump(redactMap(removed, e.opts.mask)))
	}
}

// sortedKeys returns the map's keys in sorted order. Decoded documents
// are unordered; sorting stands in for the source document's natural key
// order and keeps every walk deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func isMapping(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// dotted renders a path stack as "section.sub.leaf" for log messages.
func dotted(path []string) string {
	return strings.Join(path, ".")
}
