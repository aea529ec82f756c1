// Package kasane merges a user configuration document with a default
// document and validates the result against the shape implied by the
// defaults.
//
// The name comes from 重ね (kasane), the Japanese art of layering. A default
// document supplies both fallback values and, implicitly, the expected
// structure; the user document layers its own values on top.
//
// Key features:
//   - Recursive deep merge with user-wins precedence
//   - Key sanitization (snake case, identifier checks, keyword prefixing)
//   - Shape-derived strict type validation, built from the defaults at runtime
//   - Dotted-path attribute access to the merged result (package confmap)
//   - Pluggable document formats (YAML, TOML, JSON, JSONC)
package kasane
