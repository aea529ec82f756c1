// Package confmap provides a dotted-path accessible read/write view over
// nested configuration mappings.
//
// Go has no field-access overloading, so attribute-style access is
// exposed as explicit accessors: m.Get("database.host") reads the same
// storage as m["database"].(map[string]any)["host"]. Paths traverse
// nested mappings and, via numeric segments, lists of mappings:
//
//	host, err := m.Get("database.replicas.0.host")
//
// Accessing a key that does not exist at some level fails with a
// *KeyError whose message names the missing key.
package confmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Map is a read/write view over a nested configuration mapping. It wraps
// the underlying map directly: reads and writes through the view are
// visible to holders of the raw map and vice versa.
type Map map[string]any

// New returns a view over data. The data is not copied.
func New(data map[string]any) Map {
	return Map(data)
}

// KeyError is returned when a path segment does not exist at its level.
type KeyError struct {
	// Key is the missing segment.
	Key string
	// Path is the full dotted path of the failed access.
	Path string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("unknown key %q in path %q", e.Key, e.Path)
}

// PathError is returned when a path cannot be traversed: an empty path, a
// non-numeric segment against a list, or a segment descending into a
// scalar.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// TypeError is returned by the typed accessors when the value at a path
// has a different type than requested.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Get retrieves the value at the given dotted path.
//
// Example:
//
//	value, err := m.Get("server.port")
func (m Map) Get(path string) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	current := any(map[string]any(m))
	for _, segment := range segments {
		next, err := descend(current, segment, path)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Has reports whether a value exists at the given dotted path.
func (m Map) Has(path string) bool {
	_, err := m.Get(path)
	return err == nil
}

// Set stores value at the given dotted path, creating intermediate
// mappings as needed. Setting through a list requires the indexed
// elements to exist already; lists are never grown implicitly.
//
// Example:
//
//	err := m.Set("server.port", 9000)
func (m Map) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	current := any(map[string]any(m))
	for _, segment := range segments[:len(segments)-1] {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok || next == nil {
				created := map[string]any{}
				node[segment] = created
				current = any(created)
				continue
			}
			current = next
		case []any:
			index, err := listIndex(node, segment, path)
			if err != nil {
				return err
			}
			current = node[index]
		default:
			return &PathError{Path: path, Reason: fmt.Sprintf("segment %q is not a section or list", segment)}
		}
	}

	last := segments[len(segments)-1]
	switch node := current.(type) {
	case map[string]any:
		node[last] = value
		return nil
	case []any:
		index, err := listIndex(node, last, path)
		if err != nil {
			return err
		}
		node[index] = value
		return nil
	default:
		return &PathError{Path: path, Reason: fmt.Sprintf("segment %q is not a section or list", last)}
	}
}

// Section retrieves the nested mapping at path as a Map.
func (m Map) Section(path string) (Map, error) {
	value, err := m.Get(path)
	if err != nil {
		return nil, err
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "section", Actual: describe(value)}
	}
	return Map(nested), nil
}

// String retrieves the string at path.
func (m Map) String(path string) (string, error) {
	value, err := m.Get(path)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: describe(value)}
	}
	return s, nil
}

// Int retrieves the integer at path. All decoded integer widths are
// accepted and widened to int64; floats are not. Unsigned values above
// math.MaxInt64 do not fit and fail with a TypeError instead of wrapping
// negative.
func (m Map) Int(path string) (int64, error) {
	value, err := m.Get(path)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("out-of-range uint (%d)", v)}
		}
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("out-of-range uint64 (%d)", v)}
		}
		return int64(v), nil
	default:
		return 0, &TypeError{Path: path, Expected: "integer", Actual: describe(value)}
	}
}

// Float retrieves the float at path.
func (m Map) Float(path string) (float64, error) {
	value, err := m.Get(path)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, &TypeError{Path: path, Expected: "float", Actual: describe(value)}
	}
}

// Bool retrieves the boolean at path.
func (m Map) Bool(path string) (bool, error) {
	value, err := m.Get(path)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "boolean", Actual: describe(value)}
	}
	return b, nil
}

// Slice retrieves the list at path.
func (m Map) Slice(path string) ([]any, error) {
	value, err := m.Get(path)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "list", Actual: describe(value)}
	}
	return list, nil
}

// Raw returns the underlying mapping.
func (m Map) Raw() map[string]any {
	return map[string]any(m)
}

// descend resolves one path segment against a node.
func descend(node any, segment, path string) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		value, ok := v[segment]
		if !ok {
			return nil, &KeyError{Key: segment, Path: path}
		}
		return value, nil
	case []any:
		index, err := listIndex(v, segment, path)
		if err != nil {
			return nil, err
		}
		return v[index], nil
	default:
		return nil, &KeyError{Key: segment, Path: path}
	}
}

func listIndex(list []any, segment, path string) (int, error) {
	index, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &PathError{Path: path, Reason: fmt.Sprintf("list index %q is not a number", segment)}
	}
	if index < 0 || index >= len(list) {
		return 0, &KeyError{Key: segment, Path: path}
	}
	return index, nil
}

// splitPath splits a dotted path into segments. Keys containing literal
// dots cannot be addressed.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &PathError{Path: path, Reason: "path is empty"}
	}
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, &PathError{Path: path, Reason: "path has an empty segment"}
		}
	}
	return segments, nil
}

func describe(value any) string {
	switch value.(type) {
	case map[string]any:
		return "section"
	case []any:
		return "list"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
