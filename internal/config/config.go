package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultFiles are the patterns checked when no files are named on the
// command line.
var DefaultFiles = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// ValidCategories lists the rule categories that can be toggled as a group.
var ValidCategories = []string{"readability", "structure"}

// Config is the top-level configuration.
type Config struct {
	Rules       map[string]RuleCfg `yaml:"rules"`
	Categories  map[string]bool    `yaml:"categories,omitempty"`
	Files       []string           `yaml:"files,omitempty"`
	Ignore      []string           `yaml:"ignore,omitempty"`
	Overrides   []Override         `yaml:"overrides,omitempty"`
	FrontMatter *bool              `yaml:"front-matter,omitempty"`

	// ExplicitRules records rules named in the user's config, which win
	// over a disabled category.
	ExplicitRules map[string]bool `yaml:"-"`
}

// Override applies rule settings to files matching glob patterns.
type Override struct {
	Files      []string           `yaml:"files"`
	Rules      map[string]RuleCfg `yaml:"rules,omitempty"`
	Categories map[string]bool    `yaml:"categories,omitempty"`
}

// RuleCfg is a YAML union: can be bool (enable/disable) or map[string]any (settings).
type RuleCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Settings = nil
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML writes the shortest form that round-trips: a bool when there
// are no settings, otherwise the settings map.
func (r RuleCfg) MarshalYAML() (any, error) {
	if !r.Enabled {
		return false, nil
	}
	if r.Settings == nil {
		return true, nil
	}
	return r.Settings, nil
}

// StripFrontMatter reports whether front matter is removed before checks.
// It defaults to true.
func (c *Config) StripFrontMatter() bool {
	return c.FrontMatter == nil || *c.FrontMatter
}

// FilePatterns returns the configured file patterns or DefaultFiles.
func (c *Config) FilePatterns() []string {
	if len(c.Files) > 0 {
		return c.Files
	}
	return DefaultFiles
}
