package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/archer884/coherity/internal/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	_ "github.com/archer884/coherity/internal/rules/documentreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphstructure"
)

const docsConfig = `files: ["docs/**/*.md", "**/*.txt"]
ignore: ["CHANGELOG.md"]
front-matter: false
categories:
  structure: false
rules:
  paragraph-readability:
    formula: lix
    max-grade: 45
    min-words: 30
  document-readability:
    formula: reading-ease
    min-ease: 60
  paragraph-structure: false
overrides:
  - files: ["docs/legal/**"]
    rules:
      paragraph-readability: false
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(docsConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/**/*.md", "**/*.txt"}, cfg.FilePatterns())
	assert.Equal(t, []string{"CHANGELOG.md"}, cfg.Ignore)
	assert.False(t, cfg.StripFrontMatter())
	assert.Equal(t, map[string]bool{"structure": false}, cfg.Categories)
	assert.Equal(t, map[string]RuleCfg{
		"paragraph-readability": {Enabled: true, Settings: map[string]any{
			"formula": "lix", "max-grade": 45, "min-words": 30,
		}},
		"document-readability": {Enabled: true, Settings: map[string]any{
			"formula": "reading-ease", "min-ease": 60,
		}},
		"paragraph-structure": {Enabled: false},
	}, cfg.Rules)
	require.Len(t, cfg.Overrides, 1)
	assert.Equal(t, Override{
		Files: []string{"docs/legal/**"},
		Rules: map[string]RuleCfg{"paragraph-readability": {Enabled: false}},
	}, cfg.Overrides[0])
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
	assert.True(t, cfg.StripFrontMatter())
	assert.Equal(t, DefaultFiles, cfg.FilePatterns())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "rule:\n  paragraph-readability: false\n"},
		{"rule is a number", "rules:\n  paragraph-readability: 12\n"},
		{"override without files", "overrides:\n  - rules:\n      paragraph-structure: false\n"},
		{"category is not a bool", "categories:\n  readability: sometimes\n"},
		{"broken yaml", "rules: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestRuleCfg_YAML(t *testing.T) {
	tests := []struct {
		yaml string
		cfg  RuleCfg
	}{
		{"false\n", RuleCfg{Enabled: false}},
		{"true\n", RuleCfg{Enabled: true}},
		{"formula: cli\n", RuleCfg{Enabled: true, Settings: map[string]any{"formula": "cli"}}},
	}
	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			var got RuleCfg
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &got))
			assert.Equal(t, tt.cfg, got)

			out, err := yaml.Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, tt.yaml, string(out))
		})
	}

	var bad RuleCfg
	assert.Error(t, yaml.Unmarshal([]byte("[ari, lix]\n"), &bad))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "reading config file")

	bad := writeConfig(t, dir, "rules: {paragraph-structure: 3}\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, bad)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	docs := filepath.Join(repo, "docs", "guides")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(docs, 0o755))

	// above the repository, never reached
	writeConfig(t, root, "rules: {}\n")

	got, err := Find(docs)
	require.NoError(t, err)
	assert.Empty(t, got)

	inRepo := writeConfig(t, repo, "rules: {}\n")
	got, err = Find(docs)
	require.NoError(t, err)
	assert.Equal(t, inRepo, got)

	inDocs := writeConfig(t, filepath.Join(repo, "docs"), "rules: {}\n")
	got, err = Find(docs)
	require.NoError(t, err)
	assert.Equal(t, inDocs, got)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	cfg, from, err := Resolve("", dir)
	require.NoError(t, err)
	assert.Empty(t, from)
	assert.Equal(t, Defaults().Rules, cfg.Rules)
	assert.Empty(t, cfg.ExplicitRules)

	path := writeConfig(t, dir, docsConfig)
	cfg, from, err = Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, path, from)
	assert.Equal(t, "lix", cfg.Rules["paragraph-readability"].Settings["formula"])

	explicit := filepath.Join(dir, "strict.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("rules:\n  paragraph-structure:\n    max-words: 25\n"), 0o644))
	cfg, from, err = Resolve(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, explicit, from)
	assert.Equal(t, 25, cfg.Rules["paragraph-structure"].Settings["max-words"])
	assert.Equal(t, RuleCfg{Enabled: true}, cfg.Rules["paragraph-readability"])

	_, _, err = Resolve(filepath.Join(dir, "absent.yml"), dir)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	all := rule.All()
	require.Len(t, cfg.Rules, len(all))
	for _, r := range all {
		assert.Equal(t, RuleCfg{Enabled: true}, cfg.Rules[r.Name()], r.Name())
	}
}

func TestDumpDefaults(t *testing.T) {
	cfg := DumpDefaults()

	assert.Equal(t, map[string]bool{"readability": true, "structure": true}, cfg.Categories)
	assert.Equal(t, DefaultFiles, cfg.Files)
	assert.Equal(t, map[string]any{
		"formula": "ari", "max-grade": 14.0, "min-ease": 30.0, "min-words": 20,
	}, cfg.Rules["paragraph-readability"].Settings)
	assert.Equal(t, map[string]any{"max-sentences": 6, "max-words": 40},
		cfg.Rules["paragraph-structure"].Settings)

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err, "init output must pass its own schema")
	assert.Len(t, back.Rules, len(cfg.Rules))
	assert.Equal(t, "flesch-kincaid", back.Rules["document-readability"].Settings["formula"])
}

func TestMerge(t *testing.T) {
	loaded, err := Parse([]byte(docsConfig))
	require.NoError(t, err)

	cfg := Merge(Defaults(), loaded)
	assert.Equal(t, RuleCfg{Enabled: false}, cfg.Rules["paragraph-structure"])
	assert.Equal(t, loaded.Rules["paragraph-readability"], cfg.Rules["paragraph-readability"])
	assert.Equal(t, map[string]bool{
		"paragraph-readability": true,
		"document-readability":  true,
		"paragraph-structure":   true,
	}, cfg.ExplicitRules)
	assert.Equal(t, map[string]bool{"structure": false}, cfg.Categories)
	assert.Equal(t, loaded.Ignore, cfg.Ignore)
	assert.Equal(t, loaded.Overrides, cfg.Overrides)
	assert.False(t, cfg.StripFrontMatter())

	plain := Merge(Defaults(), nil)
	assert.Equal(t, Defaults().Rules, plain.Rules)
	assert.Nil(t, plain.ExplicitRules)
	assert.True(t, plain.StripFrontMatter())
}

var categoryOf = map[string]string{
	"paragraph-readability": rule.CategoryReadability,
	"document-readability":  rule.CategoryReadability,
	"paragraph-structure":   rule.CategoryStructure,
}

func lookupCategory(name string) string { return categoryOf[name] }

func TestRulesFor(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{
			"paragraph-readability": {Enabled: true, Settings: map[string]any{"formula": "lix"}},
			"document-readability":  {Enabled: true},
			"paragraph-structure":   {Enabled: true},
		},
		Overrides: []Override{
			{
				Files: []string{"docs/legal/**"},
				Rules: map[string]RuleCfg{"paragraph-readability": {Enabled: false}},
			},
			{
				Files:      []string{"**.txt"},
				Categories: map[string]bool{rule.CategoryReadability: false},
			},
			{
				Files: []string{"docs/legal/terms.md"},
				Rules: map[string]RuleCfg{"paragraph-readability": {Enabled: true, Settings: map[string]any{"min-words": 50}}},
			},
		},
	}

	tests := []struct {
		path     string
		expected map[string]RuleCfg
	}{
		{"README.md", cfg.Rules},
		{"docs/legal/privacy.md", map[string]RuleCfg{
			"paragraph-readability": {Enabled: false},
			"document-readability":  {Enabled: true},
			"paragraph-structure":   {Enabled: true},
		}},
		{"docs/legal/terms.md", map[string]RuleCfg{
			"paragraph-readability": {Enabled: true, Settings: map[string]any{"min-words": 50}},
			"document-readability":  {Enabled: true},
			"paragraph-structure":   {Enabled: true},
		}},
		{"notes/todo.txt", map[string]RuleCfg{
			"paragraph-readability": {Enabled: false, Settings: map[string]any{"formula": "lix"}},
			"document-readability":  {Enabled: false},
			"paragraph-structure":   {Enabled: true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.RulesFor(tt.path, lookupCategory))
		})
	}
	assert.True(t, cfg.Rules["paragraph-readability"].Enabled)
}

func TestRulesFor_NamedRulesOutliveCategories(t *testing.T) {
	cfg := &Config{
		Rules: map[string]RuleCfg{
			"paragraph-readability": {Enabled: true},
			"document-readability":  {Enabled: true},
			"paragraph-structure":   {Enabled: true},
		},
		Categories:    map[string]bool{rule.CategoryReadability: false, "style": false},
		ExplicitRules: map[string]bool{"document-readability": true},
		Overrides: []Override{{
			Files: []string{"*.md"},
			Rules: map[string]RuleCfg{"paragraph-readability": {Enabled: true}},
		}},
	}

	got := cfg.RulesFor("notes.txt", lookupCategory)
	assert.False(t, got["paragraph-readability"].Enabled)
	assert.True(t, got["document-readability"].Enabled)
	assert.True(t, got["paragraph-structure"].Enabled)

	got = cfg.RulesFor("guide.md", lookupCategory)
	assert.True(t, got["paragraph-readability"].Enabled)
}

func TestOverride_Matches(t *testing.T) {
	o := Override{Files: []string{"[broken", "docs/*.md"}}
	assert.True(t, o.Matches("docs/intro.md"))
	assert.False(t, o.Matches("intro.md"))
}
