package kasane

import (
	"strings"

	"github.com/rs/zerolog"
)

// ignoreSet holds section names that are exempt from merging and
// validation. It contains both the raw names given by the caller and
// their sanitized forms, so an ignored section can never reappear under
// its canonical name.
type ignoreSet map[string]struct{}

// newIgnoreSet validates and sanitizes the ignored-sections option.
// Entries must be non-empty and must survive the sanitization pipeline;
// a bad entry aborts the call with an OptionError before any merge work.
func newIgnoreSet(names []string, s *sanitizer) (ignoreSet, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(ignoreSet, len(names)*2)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, &OptionError{
				Option: "ignored sections",
				Reason: "section names must be non-empty",
			}
		}
		sanitized, err := s.Sanitize(name)
		if err != nil {
			return nil, &OptionError{
				Option: "ignored sections",
				Reason: err.Error(),
				Err:    err,
			}
		}
		set[name] = struct{}{}
		set[sanitized] = struct{}{}
	}
	return set, nil
}

// Has reports whether key is ignored, under either its raw or sanitized
// name.
func (set ignoreSet) Has(key string) bool {
	_, ok := set[key]
	return ok
}

// filter removes ignored subtrees from doc in place, at any depth.
// Subtrees under keys that are kept are still walked, including mappings
// inside lists.
func (set ignoreSet) filter(doc map[string]any, log zerolog.Logger) {
	if len(set) == 0 {
		return
	}
	for key, value := range doc {
		if set.Has(key) {
			delete(doc, key)
			log.Debug().Str("section", key).Msg("section ignored on merge")
			continue
		}
		set.filterValue(value, log)
	}
}

func (set ignoreSet) filterValue(value any, log zerolog.Logger) {
	switch v := value.(type) {
	case map[string]any:
		set.filter(v, log)
	case []any:
		for _, item := range v {
			set.filterValue(item, log)
		}
	}
}
