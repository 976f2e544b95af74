// Package config contains the loader and typed model for the optional
// .prcomment.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the default location of the configuration file.
const DefaultPath = ".prcomment.yaml"

const (
	defaultGHPath = "gh"
	defaultState  = "open"
	defaultLimit  = 100
)

// Config holds tool settings loaded from .prcomment.yaml. Every field is
// optional; zero values are replaced with defaults during Load.
type Config struct {
	// GH is the gh binary name or path used for all GitHub interaction.
	GH string `yaml:"gh,omitempty"`
	// State is the default pull request state filter passed to gh pr list.
	State string `yaml:"state,omitempty"`
	// Limit caps the number of pull requests requested from gh pr list.
	Limit int `yaml:"limit,omitempty"`
	// EnvFiles lists .env files loaded before the GitHub token lookup.
	EnvFiles []string `yaml:"envFiles,omitempty"`
}

// validStates are the state filters gh pr list accepts.
var validStates = map[string]bool{
	"open":   true,
	"closed": true,
	"merged": true,
	"all":    true,
}

// ValidState reports whether s is a state filter gh pr list accepts.
func ValidState(s string) bool {
	return validStates[s]
}

// Load reads the configuration file at path and applies defaults. A missing
// file yields the default configuration; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if cfg.GH == "" {
		cfg.GH = defaultGHPath
	}
	if cfg.State == "" {
		cfg.State = defaultState
	}
	if cfg.Limit == 0 {
		cfg.Limit = defaultLimit
	}

	if !ValidState(cfg.State) {
		return nil, fmt.Errorf("config %q: invalid state %q, expected open, closed, merged or all", path, cfg.State)
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("config %q: limit must be positive, got %d", path, cfg.Limit)
	}

	return cfg, nil
}
