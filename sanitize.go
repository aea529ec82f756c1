package kasane

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// SanitizeKey applies the key sanitization pipeline to a single section
// name under the given options. It is the same normalization the merge
// applies to every key of both documents; the stub generator uses it to
// compute the key names Load will produce.
func SanitizeKey(key string, opts ...Option) (string, error) {
	return newSanitizer(newOptions(opts)).Sanitize(key)
}

// sanitizer normalizes section names according to the active options.
// The pipeline runs in a fixed order: case conversion, identifier check,
// dash replacement, keyword prefixing. Sanitization is deterministic and
// idempotent: a name already in canonical form passes through unchanged.
type sanitizer struct {
	snakeCase         bool
	strictIdentifiers bool
	underscoredDashes bool
	keywordPrefix     bool
	log               zerolog.Logger
}

func newSanitizer(o *options) *sanitizer {
	return &sanitizer{
		snakeCase:         o.snakeCaseKeys,
		strictIdentifiers: o.strictIdentifiers,
		underscoredDashes: o.underscoredDashes,
		keywordPrefix:     o.keywordPrefix,
		log:               o.logger,
	}
}

// Sanitize returns the canonical form of a section name. Each step that
// changes the name logs the rename; the identifier check logs and returns
// an InvalidSectionNameError instead.
func (s *sanitizer) Sanitize(section string) (string, error) {
	if s.snakeCase {
		converted := toSnake(section)
		if converted != section {
			s.log.Info().Str("section", section).Str("renamed", converted).
				Msg("section converted to snake case")
			section = converted
		}
	}
	if s.strictIdentifiers && !isIdentifier(section) {
		s.log.Error().Str("section", section).Msg("section is not a valid identifier")
		return "", &InvalidSectionNameError{Section: section}
	}
	if s.underscoredDashes && strings.ContainsRune(section, '-') {
		converted := strings.ReplaceAll(section, "-", "_")
		s.log.Info().Str("section", section).Str("renamed", converted).
			Msg("section dashes replaced with underscores")
		section = converted
	}
	if s.keywordPrefix && token.IsKeyword(section) {
		converted := "_" + section
		s.log.Info().Str("section", section).Str("renamed", converted).
			Msg("section is a reserved word, prefixing with underscore")
		section = converted
	}
	return section, nil
}

// isIdentifier reports whether the name could be used as a bare
// identifier. Unlike token.IsIdentifier, reserved words are accepted
// here; collisions with keywords are the keyword-prefix step's concern.
func isIdentifier(name string) bool {
	return token.IsIdentifier(name) || token.IsKeyword(name)
}

// toSnake converts camel, Pascal or mixed-case names to lower snake case.
// Dashes and spaces are left alone; replacing them is a separate pipeline
// step. Acronym runs keep their grouping: "ttlTTLSeconds" becomes
// "ttl_ttl_seconds", not "ttl_t_t_l_seconds".
func toSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prev := i > 0 && !unicode.IsUpper(runes[i-1]) && isWordRune(runes[i-1])
			next := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
			if prev || next {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isWordRune reports whether r belongs to a word as opposed to being a
// separator such as '-', '_' or a space.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
