package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/archer884/coherity/internal/rule"
	"gopkg.in/yaml.v3"
)

// FileName is the config file Find looks for.
const FileName = ".coherity.yml"

// Resolve loads the configuration for a run and merges it over the
// registered rules' defaults. An explicit path must exist. Without one the
// nearest FileName between dir and the repository root is used, and when
// there is none the defaults apply alone. The second result is the file
// the config came from, or "".
func Resolve(explicit, dir string) (*Config, string, error) {
	path := explicit
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	if path == "" {
		return Merge(Defaults(), nil), "", nil
	}

	loaded, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return Merge(Defaults(), loaded), path, nil
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the schema and decodes it.
func Parse(data []byte) (*Config, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Find looks for FileName in dir and its parents. The search ends at the
// first directory holding .git, or at the filesystem root. It returns ""
// when no config exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		if isDir(filepath.Join(dir, ".git")) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Defaults enables every registered rule with its built-in settings.
func Defaults() *Config {
	return fromRegistry(false)
}

// DumpDefaults is Defaults with every setting written out, every category
// on and the default file patterns. It is what `coherity init` writes.
func DumpDefaults() *Config {
	cfg := fromRegistry(true)
	cfg.Categories = make(map[string]bool, len(ValidCategories))
	for _, c := range ValidCategories {
		cfg.Categories[c] = true
	}
	cfg.Files = append([]string(nil), DefaultFiles...)
	return cfg
}

func fromRegistry(withSettings bool) *Config {
	rules := make(map[string]RuleCfg)
	for _, r := range rule.All() {
		rc := RuleCfg{Enabled: true}
		if c, ok := r.(rule.Configurable); ok && withSettings {
			rc.Settings = c.DefaultSettings()
		}
		rules[r.Name()] = rc
	}
	return &Config{Rules: rules}
}
