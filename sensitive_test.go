package kasane

import (
	"testing"

	"github.com/kasane-go/kasane/container"
)

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"db_password", true},
		{"PASSWORD", true},
		{"api_key", true},
		{"apiKey", true},
		{"access_token", true},
		{"client_secret", true},
		{"host", false},
		{"port", false},
		{"name", false},
	}
	for _, tt := range tests {
		if got := isSensitiveKey(tt.key); got != tt.want {
			t.Errorf("isSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRedactMap(t *testing.T) {
	doc := map[string]any{
		"database": map[string]any{
			"host":     "localhost",
			"password": "s3cret",
		},
		"tokens": []any{"t1", "t2"},
	}
	original := container.DeepCopyMap(doc)

	redacted := redactMap(doc, defaultMask)

	db := redacted["database"].(map[string]any)
	if db["password"] != DefaultMaskString {
		t.Errorf("password = %v, want masked", db["password"])
	}
	if db["host"] != "localhost" {
		t.Errorf("host = %v, want untouched", db["host"])
	}

	// List elements under a sensitive key are masked individually.
	tokens := redacted["tokens"].([]any)
	for i, tok := range tokens {
		if tok != DefaultMaskString {
			t.Errorf("tokens[%d] = %v, want masked", i, tok)
		}
	}

	if !container.Equal(doc, original) {
		t.Error("redactMap modified its input")
	}
}

func TestRedactMap_NilMaskDisablesRedaction(t *testing.T) {
	doc := map[string]any{"password": "s3cret"}

	redacted := redactMap(doc, nil)
	if redacted["password"] != "s3cret" {
		t.Error("values were masked with redaction disabled")
	}
}

func TestRedactMap_CustomMask(t *testing.T) {
	doc := map[string]any{"secret": "value"}

	redacted := redactMap(doc, func(any) any { return "<hidden>" })
	if redacted["secret"] != "<hidden>" {
		t.Errorf("secret = %v, want the custom mask output", redacted["secret"])
	}
}
