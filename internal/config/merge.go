package config

import (
	"maps"

	"github.com/gobwas/glob"
)

// Merge lays loaded over defaults. Rules and categories named in loaded
// replace the defaults one by one; files and front-matter replace them
// when set. Ignore patterns and overrides only come from loaded. Every
// rule loaded names is recorded in ExplicitRules.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{
		Rules:       maps.Clone(defaults.Rules),
		Categories:  maps.Clone(defaults.Categories),
		Files:       defaults.Files,
		FrontMatter: defaults.FrontMatter,
	}
	if out.Rules == nil {
		out.Rules = map[string]RuleCfg{}
	}
	if loaded == nil {
		return out
	}

	out.ExplicitRules = make(map[string]bool, len(loaded.Rules))
	for name, rc := range loaded.Rules {
		out.Rules[name] = rc
		out.ExplicitRules[name] = true
	}
	if len(loaded.Categories) > 0 {
		if out.Categories == nil {
			out.Categories = make(map[string]bool, len(loaded.Categories))
		}
		maps.Copy(out.Categories, loaded.Categories)
	}
	if len(loaded.Files) > 0 {
		out.Files = loaded.Files
	}
	if loaded.FrontMatter != nil {
		out.FrontMatter = loaded.FrontMatter
	}
	out.Ignore = loaded.Ignore
	out.Overrides = loaded.Overrides
	return out
}

// RulesFor resolves the rule configuration for one file. Top-level rules
// come first, then each override whose files match path, in order. A
// rule whose category is switched off is disabled unless it was named
// explicitly, at the top level or in a matching override. categoryOf maps
// a rule name to its category.
func (c *Config) RulesFor(path string, categoryOf func(name string) string) map[string]RuleCfg {
	rules := maps.Clone(c.Rules)
	if rules == nil {
		rules = map[string]RuleCfg{}
	}
	categories := maps.Clone(c.Categories)
	if categories == nil {
		categories = map[string]bool{}
	}
	explicit := maps.Clone(c.ExplicitRules)
	if explicit == nil {
		explicit = map[string]bool{}
	}

	for _, o := range c.Overrides {
		if !o.Matches(path) {
			continue
		}
		for name, rc := range o.Rules {
			rules[name] = rc
			explicit[name] = true
		}
		maps.Copy(categories, o.Categories)
	}

	for name, rc := range rules {
		if explicit[name] {
			continue
		}
		if on, set := categories[categoryOf(name)]; set && !on {
			rc.Enabled = false
			rules[name] = rc
		}
	}
	return rules
}

// Matches reports whether path matches one of the override's patterns.
// Invalid patterns never match.
func (o Override) Matches(path string) bool {
	for _, pattern := range o.Files {
		g, err := glob.Compile(pattern)
		if err == nil && g.Match(path) {
			return true
		}
	}
	return false
}
