package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no configuration file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./vidocq.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vidocq", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. VIDOCQ_CONFIG environment variable
//  2. ./vidocq.toml (current directory)
//  3. $XDG_CONFIG_HOME/vidocq/config.toml
//  4. /etc/vidocq/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("VIDOCQ_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("VIDOCQ_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./vidocq.toml",
		DefaultPath(),
		"/etc/vidocq/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// Resolve loads the file at path, or the discovered file when path is
// empty. With neither, the defaults are returned and the path is "".
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		found, err := Discover()
		if errors.Is(err, ErrNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
