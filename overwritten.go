package kasane

import (
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/kasane-go/kasane/container"
)

// logOverwritten reconciles the pre-merge snapshot against the final
// document and logs the dotted paths whose values differ from what the
// user originally supplied, either because a default filled them in or
// because sanitization renamed them. The record exists purely for
// observability; it is never part of the returned value.
func (e *engine) logOverwritten(snapshot, final map[string]any) {
	record := make(map[string]any)
	diffDocs(snapshot, final, nil, record)
	if len(record) == 0 {
		return
	}
	e.log.Info().Msgf("the following sections were overwritten:\n%s",
		spew.Sdump(redactMap(record, e.opts.mask)))
}

// diffDocs collects dotted path -> final value for every leaf of final
// that is absent from or different in snapshot. Lists compare wholesale;
// element-wise diffing would imply list merging, which is unsupported.
func diffDocs(snapshot, final map[string]any, path []string, record map[string]any) {
	for _, key := range sortedKeys(final) {
		finalValue := final[key]
		keyPath := append(path, key)

		previous, exists := snapshot[key]
		if !exists {
			record[dotted(keyPath)] = finalValue
			continue
		}

		finalMap, finalIsMap := finalValue.(map[string]any)
		previousMap, previousIsMap := previous.(map[string]any)
		if finalIsMap && previousIsMap {
			diffDocs(previousMap, finalMap, keyPath, record)
			continue
		}

		if !container.Equal(previous, finalValue) {
			record[dotted(keyPath)] = finalValue
		}
	}
}

// deletePath removes the value at a segment path from doc, traversing
// nested mappings and list indices. It returns the removed value and
// whether anything was removed. Paths are segment lists, not dotted
// strings, so key names containing a literal dot are addressable.
func deletePath(doc map[string]any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	parent := any(doc)
	for _, segment := range segments[:len(segments)-1] {
		switch p := parent.(type) {
		case map[string]any:
			next, ok := p[segment]
			if !ok {
				return nil, false
			}
			parent = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(p) {
				return nil, false
			}
			parent = p[index]
		default:
			return nil, false
		}
	}

	last := segments[len(segments)-1]
	switch p := parent.(type) {
	case map[string]any:
		value, ok := p[last]
		if !ok {
			return nil, false
		}
		delete(p, last)
		return value, true
	case []any:
		// The slice header in the enclosing container cannot be rewritten
		// from here; list elements are cleared in place instead.
		index, err := strconv.Atoi(last)
		if err != nil || index < 0 || index >= len(p) {
			return nil, false
		}
		value := p[index]
		p[index] = nil
		return value, true
	default:
		return nil, false
	}
}
