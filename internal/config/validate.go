package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vmunix/vidocq/pkg/release"
	"github.com/vmunix/vidocq/pkg/release/scoring"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true,
}

var knownQualities = []release.Quality{
	release.Q480, release.Q576, release.Q720, release.Q900, release.Q1080,
	release.Q1440, release.Q2160, release.Q5K, release.Q8K, release.Q16K,
}

// Validate checks the configuration and returns one FieldError per
// offending key, ordered by key. The result is empty when c is valid.
func (c *Config) Validate() []FieldError {
	var errs []FieldError
	add := func(key, format string, args ...any) {
		errs = append(errs, FieldError{Key: key, Message: fmt.Sprintf(format, args...)})
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		add("log.level", "must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		add("log.format", "must be text or json; got %q", c.Log.Format)
	}

	if _, err := release.ParseMediaType(c.Parser.MediaType); err != nil {
		add("parser.media_type", "must be movie, episode or empty; got %q", c.Parser.MediaType)
	}
	if c.Parser.Workers < 1 {
		add("parser.workers", "must be at least 1, got %d", c.Parser.Workers)
	}

	if c.Corpus.Path == "" {
		add("corpus.path", "required")
	}

	for i, ext := range c.Watch.Extensions {
		if ext == "" || ext == "." {
			add("watch.extensions", "entry %d is empty", i)
		}
	}

	if c.Quality.Default != "" {
		if _, ok := c.Quality.Profiles[c.Quality.Default]; !ok {
			add("quality.default", "profile %q not defined", c.Quality.Default)
		}
	}
	for name, p := range c.Quality.Profiles {
		for _, q := range p.Quality {
			if !isKnownQuality(q) {
				add("quality.profiles."+name+".quality", "unknown quality %q", q)
			}
		}
	}

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Key < errs[j].Key })
	return errs
}

func isKnownQuality(s string) bool {
	for _, q := range knownQualities {
		if scoring.Matches(q.String(), s) {
			return true
		}
	}
	return false
}
