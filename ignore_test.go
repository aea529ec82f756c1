package kasane

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewIgnoreSet(t *testing.T) {
	san := newSanitizer(newOptions(nil))

	set, err := newIgnoreSet([]string{"environments", "secrets"}, san)
	if err != nil {
		t.Fatalf("newIgnoreSet() error = %v", err)
	}
	if !set.Has("environments") || !set.Has("secrets") {
		t.Errorf("ignore set is missing configured names: %v", set)
	}
	if set.Has("database") {
		t.Errorf("ignore set unexpectedly contains %q", "database")
	}
}

func TestNewIgnoreSet_Empty(t *testing.T) {
	san := newSanitizer(newOptions(nil))

	set, err := newIgnoreSet(nil, san)
	if err != nil {
		t.Fatalf("newIgnoreSet() error = %v", err)
	}
	if set != nil {
		t.Errorf("newIgnoreSet(nil) = %v, want nil", set)
	}
}

func TestNewIgnoreSet_BlankEntry(t *testing.T) {
	san := newSanitizer(newOptions(nil))

	_, err := newIgnoreSet([]string{"environments", "  "}, san)
	var oerr *OptionError
	if !errors.As(err, &oerr) {
		t.Fatalf("newIgnoreSet() error = %v, want OptionError", err)
	}
}

func TestNewIgnoreSet_UnsanitizableEntry(t *testing.T) {
	san := newSanitizer(newOptions([]Option{WithStrictIdentifiers()}))

	_, err := newIgnoreSet([]string{"prod-env"}, san)
	var oerr *OptionError
	if !errors.As(err, &oerr) {
		t.Fatalf("newIgnoreSet() error = %v, want OptionError", err)
	}
	var serr *InvalidSectionNameError
	if !errors.As(err, &serr) {
		t.Errorf("OptionError does not wrap the sanitization failure: %v", err)
	}
}

func TestNewIgnoreSet_ContainsSanitizedForm(t *testing.T) {
	san := newSanitizer(newOptions([]Option{WithSnakeCaseKeys(), WithUnderscoredDashes()}))

	set, err := newIgnoreSet([]string{"Prod-Env"}, san)
	if err != nil {
		t.Fatalf("newIgnoreSet() error = %v", err)
	}
	if !set.Has("Prod-Env") {
		t.Error("ignore set is missing the raw name")
	}
	if !set.Has("prod_env") {
		t.Error("ignore set is missing the sanitized name")
	}
}

func TestIgnoreSet_Filter(t *testing.T) {
	san := newSanitizer(newOptions(nil))
	set, err := newIgnoreSet([]string{"environments", "internal"}, san)
	if err != nil {
		t.Fatalf("newIgnoreSet() error = %v", err)
	}

	doc := map[string]any{
		"app": map[string]any{
			"name":     "myapp",
			"internal": map[string]any{"debug": true},
		},
		"environments": map[string]any{
			"prod": map[string]any{"replicas": 3},
		},
		"servers": []any{
			map[string]any{"host": "a", "internal": true},
			map[string]any{"host": "b"},
		},
	}

	set.filter(doc, zerolog.Nop())

	if _, ok := doc["environments"]; ok {
		t.Error("top-level ignored section survived the filter")
	}
	app := doc["app"].(map[string]any)
	if _, ok := app["internal"]; ok {
		t.Error("nested ignored section survived the filter")
	}
	if app["name"] != "myapp" {
		t.Error("kept section was modified")
	}
	first := doc["servers"].([]any)[0].(map[string]any)
	if _, ok := first["internal"]; ok {
		t.Error("ignored key inside a list element survived the filter")
	}
	if first["host"] != "a" {
		t.Error("list element was modified beyond the ignored key")
	}
}
