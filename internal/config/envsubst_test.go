package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")
	t.Setenv("UNSET_VAR_DEFAULT", "")
	t.Setenv("SET_VAR_OVERRIDE", "from_env")
	t.Setenv("REQUIRED_VAR_TEST", "")
	t.Setenv("VAR1_MULTI", "one")
	t.Setenv("VAR3_MULTI", "")

	tests := []struct {
		name        string
		input       string
		wantContent string
		wantMissing []string
	}{
		{
			name:        "simple",
			input:       "value = ${TEST_VAR_SIMPLE}",
			wantContent: "value = hello",
		},
		{
			// t.Setenv cannot truly unset, so use a name that is never set
			name:        "missing left unchanged",
			input:       "value = ${VIDOCQ_TEST_NONEXISTENT_VAR_12345}",
			wantContent: "value = ${VIDOCQ_TEST_NONEXISTENT_VAR_12345}",
			wantMissing: []string{"VIDOCQ_TEST_NONEXISTENT_VAR_12345"},
		},
		{
			name:        "empty uses default",
			input:       "value = ${UNSET_VAR_DEFAULT:-default_value}",
			wantContent: "value = default_value",
		},
		{
			name:        "default overridden by env",
			input:       "value = ${SET_VAR_OVERRIDE:-default}",
			wantContent: "value = from_env",
		},
		{
			name:        "required reports message",
			input:       "value = ${REQUIRED_VAR_TEST:?data dir is required}",
			wantContent: "value = ${REQUIRED_VAR_TEST:?data dir is required}",
			wantMissing: []string{"REQUIRED_VAR_TEST: data dir is required"},
		},
		{
			name:        "multiple",
			input:       "${VAR1_MULTI} ${VIDOCQ_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}",
			wantContent: "one ${VIDOCQ_VAR2_NONEXISTENT} three",
			wantMissing: []string{"VIDOCQ_VAR2_NONEXISTENT"},
		},
		{
			name:        "bare dollar untouched",
			input:       "price = \"$5\"",
			wantContent: "price = \"$5\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, missing := substituteEnvVars(tt.input)
			assert.Equal(t, tt.wantContent, content)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
