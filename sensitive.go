package kasane

import "strings"

// SensitiveMaskFunc is a function that masks sensitive values before they
// appear in log dumps. It receives the original value and returns the
// value to log in its place.
type SensitiveMaskFunc func(value any) any

// DefaultMaskString is the replacement used by the default mask function.
const DefaultMaskString = "********"

// sensitiveKeyPatterns are matched case-insensitively as substrings of key
// names. Values under matching keys are masked in dumps of the resulting
// and overwritten documents. The merge itself never alters these values.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"api_key",
	"apikey",
	"credential",
	"private_key",
}

func defaultMask(any) any { return DefaultMaskString }

// isSensitiveKey reports whether a key name looks like it holds a secret.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// redactMap returns a copy of doc with sensitive leaf values replaced by
// mask. The input is never modified. A nil mask disables redaction and
// returns doc unchanged.
func redactMap(doc map[string]any, mask SensitiveMaskFunc) map[string]any {
	if mask == nil {
		return doc
	}
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = redactValue(key, value, mask)
	}
	return out
}

func redactValue(key string, value any, mask SensitiveMaskFunc) any {
	switch v := value.(type) {
	case map[string]any:
		return redactMap(v, mask)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactValue(key, item, mask)
		}
		return out
	default:
		if isSensitiveKey(key) {
			return mask(v)
		}
		return v
	}
}
