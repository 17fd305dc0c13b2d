package config

import (
	"fmt"
	"strings"
)

// FieldError is a validation failure of one dotted config key,
// such as "parser.workers" or "quality.profiles.hd.quality".
type FieldError struct {
	Key     string
	Message string
}

func (e FieldError) Error() string {
	return e.Key + ": " + e.Message
}

// ConfigError collects everything wrong with one config file: environment
// variables the file references but the process does not set, and keys
// that failed validation.
type ConfigError struct {
	Path    string
	Missing []string
	Fields  []FieldError
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "config %s:", e.Path)
	} else {
		b.WriteString("config:")
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  unset environment variables: %s", strings.Join(e.Missing, ", "))
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "\n  [%s] %s", f.Key, f.Message)
	}
	return b.String()
}

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Fields) > 0
}

// Keys returns the offending config keys in report order.
func (e *ConfigError) Keys() []string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return keys
}
