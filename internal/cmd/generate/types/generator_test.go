package types

import (
	"regexp"
	"strings"
	"testing"

	"github.com/kasane-go/kasane"
)

func TestGenerate(t *testing.T) {
	defaults := map[string]any{
		"name":  "myapp",
		"port":  8080,
		"debug": false,
		"logging": map[string]any{
			"level": "info",
			"rotate": map[string]any{
				"max_size": 100,
			},
		},
		"servers": []any{
			map[string]any{"host": "a", "weight": 1.5},
		},
		"tags":  []any{"x"},
		"blobs": []any{},
	}

	opts := Options{
		Input:       "default.config.yaml",
		TypeName:    "Config",
		PackageName: "config",
	}
	source, err := Generate(opts, defaults, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got := string(source)

	for _, want := range []string{
		"// Code generated by kasane generate types from default.config.yaml; DO NOT EDIT.",
		"package config",
		"type Config struct {",
		"type ConfigLogging struct {",
		"type ConfigLoggingRotate struct {",
		"type ConfigServersItem struct {",
		"`yaml:\"max_size\" json:\"max_size\"`",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q\n%s", want, got)
		}
	}

	// gofmt pads struct columns, so fields are matched loosely.
	for _, want := range []string{
		`Name\s+string`,
		`Port\s+int`,
		`Debug\s+bool`,
		`Weight\s+float64`,
		`MaxSize\s+int`,
		`Tags\s+\[\]string`,
		`Blobs\s+\[\]any`,
		`Servers\s+\[\]ConfigServersItem`,
	} {
		if !regexp.MustCompile(want).MatchString(got) {
			t.Errorf("generated source missing field matching %q\n%s", want, got)
		}
	}
}

func TestGenerate_SanitizesFieldTags(t *testing.T) {
	defaults := map[string]any{
		"Cache-TTL": 60,
	}
	opts := Options{
		Input:       "default.config.yaml",
		TypeName:    "Config",
		PackageName: "config",
	}
	source, err := Generate(opts, defaults, []kasane.Option{
		kasane.WithSnakeCaseKeys(),
		kasane.WithUnderscoredDashes(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got := string(source)

	if !regexp.MustCompile(`CacheTtl\s+int`).MatchString(got) {
		t.Errorf("generated source missing sanitized field:\n%s", got)
	}
	if !strings.Contains(got, "`yaml:\"cache_ttl\" json:\"cache_ttl\"`") {
		t.Errorf("generated source missing sanitized tags:\n%s", got)
	}
}

func TestGenerate_InvalidKeyFails(t *testing.T) {
	defaults := map[string]any{
		"not an identifier!": 1,
	}
	opts := Options{
		Input:       "default.config.yaml",
		TypeName:    "Config",
		PackageName: "config",
	}
	_, err := Generate(opts, defaults, []kasane.Option{kasane.WithStrictIdentifiers()})
	if err == nil {
		t.Fatal("Generate() accepted an unsanitizable key")
	}
}

func TestExportName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cache_ttl", "CacheTtl"},
		{"name", "Name"},
		{"multi_word_key", "MultiWordKey"},
		{"_", "Field"},
	}
	for _, tt := range tests {
		if got := exportName(tt.in); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
