package types

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/kasane-go/kasane"
)

// Generate renders Go struct types mirroring the shape of the default
// document. The root struct is named opts.TypeName; nested sections get
// types named after their path (with root type "Config", section
// "logging.rotate" becomes ConfigLoggingRotate), and lists of sections
// get an Item-suffixed element type. The output is gofmt-formatted.
func Generate(opts Options, defaults map[string]any, sanitizeOpts []kasane.Option) ([]byte, error) {
	shape := kasane.DeriveShape(defaults)

	g := &generator{
		opts:      opts,
		sanitize:  sanitizeOpts,
		takenName: map[string]bool{opts.TypeName: true},
	}
	if err := g.emitStruct(opts.TypeName, shape); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by kasane generate types from %s; DO NOT EDIT.\n\n", opts.Input)
	fmt.Fprintf(&b, "package %s\n\n", opts.PackageName)
	for i, decl := range g.decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl)
	}

	source, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return source, nil
}

type generator struct {
	opts      Options
	sanitize  []kasane.Option
	decls     []string
	takenName map[string]bool
}

// emitStruct renders one struct declaration and, depth-first, the
// declarations of any nested section types it references.
func (g *generator) emitStruct(name string, shape *kasane.Shape) error {
	keys := make([]string, 0, len(shape.Fields))
	for key := range shape.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", name)

	var nested []func() error
	for _, key := range keys {
		sanitized, err := kasane.SanitizeKey(key, g.sanitize...)
		if err != nil {
			return err
		}

		fieldType, emit := g.fieldType(name, sanitized, shape.Fields[key])
		if emit != nil {
			nested = append(nested, emit)
		}

		fmt.Fprintf(&b, "\t%s %s `yaml:%q json:%q`\n", exportName(sanitized), fieldType, sanitized, sanitized)
	}
	b.WriteString("}\n")
	g.decls = append(g.decls, b.String())

	for _, emit := range nested {
		if err := emit(); err != nil {
			return err
		}
	}
	return nil
}

// fieldType maps a shape to a Go type expression. For section shapes it
// reserves a type name and returns a closure that emits the declaration,
// so nested types appear after the struct that references them.
func (g *generator) fieldType(parent, key string, shape *kasane.Shape) (string, func() error) {
	switch shape.Kind {
	case kasane.KindRecord:
		name := g.typeName(parent + exportName(key))
		return name, func() error { return g.emitStruct(name, shape) }
	case kasane.KindList:
		if shape.Elem == nil {
			return "[]any", nil
		}
		if shape.Elem.Kind == kasane.KindRecord {
			name := g.typeName(parent + exportName(key) + "Item")
			return "[]" + name, func() error { return g.emitStruct(name, shape.Elem) }
		}
		elemType, emit := g.fieldType(parent, key, shape.Elem)
		return "[]" + elemType, emit
	case kasane.KindBool:
		return "bool", nil
	case kasane.KindInt:
		return "int", nil
	case kasane.KindFloat:
		return "float64", nil
	case kasane.KindString:
		return "string", nil
	default:
		return "any", nil
	}
}

// typeName reserves a unique type name, appending a counter on collision.
func (g *generator) typeName(candidate string) string {
	name := candidate
	for n := 2; g.takenName[name]; n++ {
		name = fmt.Sprintf("%s%d", candidate, n)
	}
	g.takenName[name] = true
	return name
}

// exportName converts a sanitized key to an exported Go field name:
// "cache_ttl" becomes "CacheTtl". Initialisms are not special-cased; the
// tag carries the real key name.
func exportName(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "Field"
	}
	return b.String()
}
