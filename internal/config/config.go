// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/vidocq/pkg/release/scoring"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Parser  ParserConfig  `toml:"parser"`
	Corpus  CorpusConfig  `toml:"corpus"`
	Watch   WatchConfig   `toml:"watch"`
	Quality QualityConfig `toml:"quality"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

type ParserConfig struct {
	MediaType string `toml:"media_type"` // "", movie or episode
	Workers   int    `toml:"workers"`
}

type CorpusConfig struct {
	Path string `toml:"path"`
}

type WatchConfig struct {
	Extensions []string `toml:"extensions"`
}

type QualityConfig struct {
	Default  string                    `toml:"default"`
	Profiles map[string]QualityProfile `toml:"profiles"`
}

// QualityProfile lists preferences in order, most preferred first.
type QualityProfile struct {
	Quality      []string `toml:"quality"`
	ReleaseTypes []string `toml:"release_types"`
	VideoCodecs  []string `toml:"video_codecs"`
	AudioCodecs  []string `toml:"audio_codecs"`
	Reject       []string `toml:"reject"`
}

// Scoring converts the profile for the scoring package.
func (p QualityProfile) Scoring() scoring.Profile {
	return scoring.Profile{
		Quality:      p.Quality,
		ReleaseTypes: p.ReleaseTypes,
		VideoCodecs:  p.VideoCodecs,
		AudioCodecs:  p.AudioCodecs,
		Reject:       p.Reject,
	}
}

// ProfileNames returns the configured profile names.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Quality.Profiles))
	for name := range c.Quality.Profiles {
		names = append(names, name)
	}
	return names
}

var defaultExtensions = []string{".mkv", ".mp4", ".avi", ".m4v", ".mov", ".webm", ".ts"}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, substitutes, decodes and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Fields: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and decodes the configuration without
// validating it. Unresolved variables are left in place.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Parser.Workers == 0 {
		c.Parser.Workers = runtime.NumCPU()
	}
	if c.Corpus.Path == "" {
		c.Corpus.Path = "./data/vidocq.db"
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = append([]string(nil), defaultExtensions...)
	}
	for i, ext := range c.Watch.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Watch.Extensions[i] = ext
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars expands environment references in content. It returns
// the names of variables that could not be resolved; those references are
// left unchanged. A ${VAR:?message} reference reports "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}
