package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		contains []string
	}{
		{
			name: "missing vars",
			err: &ConfigError{
				Path:    "/etc/vidocq/config.toml",
				Missing: []string{"VIDOCQ_DATA", "SECRET"},
			},
			contains: []string{"config /etc/vidocq/config.toml:", "unset environment variables: VIDOCQ_DATA, SECRET"},
		},
		{
			name: "field errors",
			err: &ConfigError{
				Path: "/etc/vidocq/config.toml",
				Fields: []FieldError{
					{Key: "parser.workers", Message: "must be at least 1, got -1"},
					{Key: "quality.default", Message: `profile "ultra" not defined`},
				},
			},
			contains: []string{"[parser.workers] must be at least 1, got -1", "[quality.default]"},
		},
		{
			name: "both",
			err: &ConfigError{
				Missing: []string{"VIDOCQ_DATA"},
				Fields:  []FieldError{{Key: "log.level", Message: "invalid"}},
			},
			contains: []string{"config:", "unset environment variables", "[log.level] invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.HasErrors())
			got := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/vidocq/config.toml"}
	assert.False(t, e.HasErrors())
	assert.Empty(t, e.Error())
	assert.Empty(t, e.Keys())
}

func TestConfigError_Keys(t *testing.T) {
	e := &ConfigError{Fields: []FieldError{
		{Key: "corpus.path", Message: "required"},
		{Key: "parser.workers", Message: "must be at least 1, got 0"},
	}}
	assert.Equal(t, []string{"corpus.path", "parser.workers"}, e.Keys())
}

func TestFieldError_Error(t *testing.T) {
	e := FieldError{Key: "log.format", Message: `must be text or json; got "xml"`}
	assert.Equal(t, `log.format: must be text or json; got "xml"`, e.Error())
}
