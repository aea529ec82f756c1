// Package container provides deep copy and structural equality for the
// nested map[string]any / []any trees produced by configuration parsers.
//
// The merge engine treats documents as exclusively owned by the call that
// produced them; these utilities implement that discipline by copying
// caller-supplied documents at the entry point and by comparing snapshots
// against merge results.
package container

import "reflect"

// DeepCopyMap creates a deep copy of a map[string]any, recursively copying
// nested maps and slices.
func DeepCopyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = DeepCopyValue(v)
	}
	return dst
}

// DeepCopySlice creates a deep copy of a []any, recursively copying
// nested maps and slices.
func DeepCopySlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, v := range src {
		dst[i] = DeepCopyValue(v)
	}
	return dst
}

// DeepCopyValue creates a deep copy of a value. For map[string]any and []any,
// it recursively copies the contents. Other types are returned as-is.
func DeepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return DeepCopyMap(val)
	case []any:
		return DeepCopySlice(val)
	default:
		return v
	}
}

// Equal reports whether two configuration values are structurally equal.
// Maps are equal when they hold the same keys with equal values, slices
// when they hold equal values in the same order. Scalars compare by
// reflect.DeepEqual, so an int and an int64 of the same magnitude are not
// equal; parsers are expected to produce consistent scalar types within
// one run.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, exists := bv[k]
			if !exists || !Equal(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i, v := range av {
			if !Equal(v, bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
