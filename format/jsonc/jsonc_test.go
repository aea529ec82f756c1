package jsonc

import (
	"testing"

	"github.com/kasane-go/kasane/document"
)

func TestParse(t *testing.T) {
	data := []byte(`{
  // comment before a section
  "app": {
    "name": "x", /* inline comment */
    "port": 8080,
  },
}`)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	app, ok := doc["app"].(map[string]any)
	if !ok {
		t.Fatalf("app = %v, want a mapping", doc["app"])
	}
	if app["name"] != "x" {
		t.Errorf("app.name = %v, want %q", app["name"], "x")
	}
	if app["port"] != int64(8080) {
		t.Errorf("app.port = %v (%T), want int64 8080", app["port"], app["port"])
	}
}

func TestParse_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("  \n")} {
		doc, err := Parse(data)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", data, err)
			continue
		}
		if doc == nil || len(doc) != 0 {
			t.Errorf("Parse(%q) = %v, want an empty mapping", data, doc)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"a": // truncated`)); err == nil {
		t.Error("Parse() accepted malformed input")
	}
}

func TestNewParser(t *testing.T) {
	p := NewParser()
	if p.Format() != document.FormatJSONC {
		t.Errorf("Format() = %v, want %v", p.Format(), document.FormatJSONC)
	}
}
