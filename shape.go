package kasane

import "fmt"

// Kind identifies the structural type of a Shape node.
type Kind int

//go:generate go tool stringer -type=Kind

const (
	// KindAny matches any value. Derived from nil defaults and from empty
	// lists, whose element type cannot be observed.
	KindAny Kind = iota

	// KindBool matches boolean values.
	KindBool

	// KindInt matches the integer family (int through int64, uint through
	// uint64). No float is ever accepted where an integer is expected.
	KindInt

	// KindFloat matches float32 and float64.
	KindFloat

	// KindString matches string values.
	KindString

	// KindList matches []any values; the element shape is held in Elem.
	KindList

	// KindRecord matches nested mappings; the field shapes are held in
	// Fields.
	KindRecord
)

// label returns the human-readable type name used in validation errors.
func (k Kind) label() string {
	switch k {
	case KindAny:
		return "any"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindRecord:
		return "section"
	}
	return "unknown"
}

// Shape is a structural type descriptor derived from a default document.
// A node is either a scalar kind, a homogeneous list (Elem describes the
// elements), a record (Fields maps section names to their shapes), or
// Any. Shapes are rebuilt from the defaults on every validating call and
// never persisted.
type Shape struct {
	Kind Kind

	// Elem is the element shape for KindList. A nil Elem means the list
	// is untyped and its elements are not checked.
	Elem *Shape

	// Fields holds the field shapes for KindRecord, keyed by sanitized
	// section name.
	Fields map[string]*Shape
}

// DeriveShape builds a Shape from a default document by recursive
// inspection of its decoded value tree.
//
// Derivation rules, per key: a nested mapping derives a record; a
// non-empty list derives a list whose element shape comes from the first
// element only (a sampling heuristic - the defaults are trusted to be
// homogeneous); an empty list derives an untyped list; nil derives Any;
// any other value derives its scalar kind.
func DeriveShape(defaults map[string]any) *Shape {
	fields := make(map[string]*Shape, len(defaults))
	for key, value := range defaults {
		fields[key] = deriveValueShape(value)
	}
	return &Shape{Kind: KindRecord, Fields: fields}
}

func deriveValueShape(value any) *Shape {
	switch v := value.(type) {
	case map[string]any:
		return DeriveShape(v)
	case []any:
		if len(v) == 0 {
			return &Shape{Kind: KindList}
		}
		return &Shape{Kind: KindList, Elem: deriveValueShape(v[0])}
	case nil:
		return &Shape{Kind: KindAny}
	default:
		return &Shape{Kind: scalarKind(v)}
	}
}

// scalarKind classifies a decoded scalar. Parsers from different formats
// produce different Go widths for the same document value (YAML yields
// int, TOML int64), so the whole integer family is one kind. Scalars of
// unrecognized types (for example TOML datetimes) classify as Any and
// are not type-checked.
func scalarKind(value any) Kind {
	switch value.(type) {
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	default:
		return KindAny
	}
}

// describeValue names a value's type for validation errors.
func describeValue(value any) string {
	switch value.(type) {
	case map[string]any:
		return "section"
	case []any:
		return "list"
	case nil:
		return "null"
	default:
		if kind := scalarKind(value); kind != KindAny {
			return kind.label()
		}
		return fmt.Sprintf("%T", value)
	}
}

// validate walks the merged document against the shape with strict scalar
// typing. Keys absent from the shape are collected as segment paths when
// extras are allowed, and abort the call otherwise. Structural mismatches
// always abort. Paths stay as segment lists so that key names containing
// a literal dot survive the round trip to deletion.
func (e *engine) validate(doc map[string]any, shape *Shape) ([][]string, error) {
	var extras [][]string
	if err := e.validateRecord(doc, shape, nil, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

func (e *engine) validateRecord(doc map[string]any, shape *Shape, path []string, extras *[][]string) error {
	for _, key := range sortedKeys(doc) {
		keyPath := append(path, key)
		field, known := shape.Fields[key]
		if !known {
			if !e.opts.allowExtra {
				err := &ValidationError{
					Path:   dotted(keyPath),
					Reason: fmt.Sprintf("extra section %q is not permitted", key),
				}
				e.log.Error().Str("section", dotted(keyPath)).Msg("extra section is not permitted")
				return err
			}
			// keyPath shares its backing array with later iterations.
			*extras = append(*extras, append([]string(nil), keyPath...))
			continue
		}
		if err := e.validateValue(doc[key], field, keyPath, extras); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) validateValue(value any, shape *Shape, path []string, extras *[][]string) error {
	switch shape.Kind {
	case KindAny:
		return nil

	case KindRecord:
		nested, ok := value.(map[string]any)
		if !ok {
			return e.mismatch(path, shape, value)
		}
		return e.validateRecord(nested, shape, path, extras)

	case KindList:
		list, ok := value.([]any)
		if !ok {
			return e.mismatch(path, shape, value)
		}
		if shape.Elem == nil {
			return nil
		}
		for i, item := range list {
			itemPath := append(path, fmt.Sprintf("%d", i))
			if err := e.validateValue(item, shape.Elem, itemPath, extras); err != nil {
				return err
			}
		}
		return nil

	default:
		if scalarKind(value) != shape.Kind {
			return e.mismatch(path, shape, value)
		}
		return nil
	}
}

// mismatch logs and builds the path-qualified type error.
func (e *engine) mismatch(path []string, shape *Shape, value any) error {
	expected := shape.Kind.label()
	if shape.Kind == KindList && shape.Elem != nil {
		expected = "list of " + shape.Elem.Kind.label()
	}
	err := &ValidationError{
		Path:     dotted(path),
		Expected: expected,
		Actual:   describeValue(value),
	}
	e.log.Error().Str("section", dotted(path)).
		Str("expected", err.Expected).Str("actual", err.Actual).
		Msg("failed validating config value")
	return err
}
