package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []string // substrings of one error; nil means valid
	}{
		{
			name:   "defaults valid",
			modify: func(*Config) {},
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: []string{"log.level", "verbose"},
		},
		{
			name:   "log level case insensitive",
			modify: func(c *Config) { c.Log.Level = "DEBUG" },
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: []string{"log.format"},
		},
		{
			name:    "invalid media type",
			modify:  func(c *Config) { c.Parser.MediaType = "series" },
			wantErr: []string{"parser.media_type", "series"},
		},
		{
			name:   "movie media type",
			modify: func(c *Config) { c.Parser.MediaType = "movie" },
		},
		{
			name:    "zero workers",
			modify:  func(c *Config) { c.Parser.Workers = 0 },
			wantErr: []string{"parser.workers"},
		},
		{
			name:    "empty corpus path",
			modify:  func(c *Config) { c.Corpus.Path = "" },
			wantErr: []string{"corpus.path"},
		},
		{
			name:    "empty extension",
			modify:  func(c *Config) { c.Watch.Extensions = []string{".mkv", ""} },
			wantErr: []string{"watch.extensions"},
		},
		{
			name: "quality default not defined",
			modify: func(c *Config) {
				c.Quality = QualityConfig{
					Default:  "ultra",
					Profiles: map[string]QualityProfile{"hd": {Quality: []string{"1080p"}}},
				}
			},
			wantErr: []string{"quality.default", "ultra"},
		},
		{
			name: "unknown profile quality",
			modify: func(c *Config) {
				c.Quality.Profiles = map[string]QualityProfile{"hd": {Quality: []string{"1080p", "1080i"}}}
			},
			wantErr: []string{"quality.profiles.hd.quality", "1080i"},
		},
		{
			name: "quality aliases accepted",
			modify: func(c *Config) {
				c.Quality.Profiles = map[string]QualityProfile{"uhd": {Quality: []string{"4k", "UHD", "2160P"}}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if tt.wantErr == nil {
				assert.Empty(t, errs)
				return
			}
			assert.True(t, containsErrorAll(errs, tt.wantErr...), "expected error with %v, got %v", tt.wantErr, errs)
		})
	}
}

// containsErrorAll reports whether one error contains every substring.
func containsErrorAll(errs []FieldError, substrs ...string) bool {
	for _, e := range errs {
		all := true
		for _, s := range substrs {
			if !strings.Contains(e.Error(), s) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func TestValidate_ReportsKeysInOrder(t *testing.T) {
	cfg := Default()
	cfg.Parser.Workers = 0
	cfg.Log.Format = "xml"
	cfg.Corpus.Path = ""

	errs := cfg.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, "corpus.path", errs[0].Key)
	assert.Equal(t, "log.format", errs[1].Key)
	assert.Equal(t, "parser.workers", errs[2].Key)
	assert.Equal(t, "parser.workers: must be at least 1, got 0", errs[2].Error())
}
