package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// project builds a small repository of prose under a temp dir.
func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		".gitignore":           "site/\n",
		".git/info/notes.md":   "# Internal\n",
		"README.md":            "# Project\n",
		"CHANGELOG.md":         "# Changes\n",
		"docs/guide.md":        "# Guide\n",
		"docs/api/ref.md":      "# Reference\n",
		"docs/intro.markdown":  "# Intro\n",
		"notes/todo.txt":       "Write the guide.\n",
		"site/index.md":        "# Built\n",
		"vendor/lib/README.md": "# Lib\n",
		"main.go":              "package main\n",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestDiscover(t *testing.T) {
	dir := project(t)

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{
			name:     "default document patterns",
			opts:     Options{Patterns: []string{"**/*.md", "**/*.markdown", "**/*.txt"}, UseGitignore: true},
			expected: []string{"CHANGELOG.md", "README.md", "docs/api/ref.md", "docs/guide.md",
				"docs/intro.markdown", "notes/todo.txt", "vendor/lib/README.md"},
		},
		{
			name:     "gitignore off",
			opts:     Options{Patterns: []string{"**/index.md"}},
			expected: []string{"site/index.md"},
		},
		{
			name:     "subdirectory",
			opts:     Options{Patterns: []string{"docs/**/*.md"}},
			expected: []string{"docs/api/ref.md", "docs/guide.md"},
		},
		{
			name:     "exact file listed once",
			opts:     Options{Patterns: []string{"README.md", "*.md"}},
			expected: []string{"CHANGELOG.md", "README.md"},
		},
		{
			name: "ignore patterns",
			opts: Options{
				Patterns:     []string{"**/*.md"},
				Ignore:       []string{"CHANGELOG.md", "vendor/**", "docs/api/"},
				UseGitignore: true,
			},
			expected: []string{"README.md", "docs/guide.md"},
		},
		{
			name:     "invalid patterns dropped",
			opts:     Options{Patterns: []string{"[notes", "notes/*.txt"}},
			expected: []string{"notes/todo.txt"},
		},
		{name: "no patterns", opts: Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.BaseDir = dir
			files, err := Discover(context.Background(), tt.opts)
			require.NoError(t, err)

			var expected []string
			for _, f := range tt.expected {
				expected = append(expected, filepath.Join(dir, filepath.FromSlash(f)))
			}
			assert.Equal(t, expected, files)
		})
	}
}

func TestDiscover_RelativeBaseDir(t *testing.T) {
	dir := project(t)
	t.Chdir(dir)

	files, err := Discover(context.Background(), Options{Patterns: []string{"notes/*.txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(".", "notes", "todo.txt")}, files)
}

func TestDiscover_CancelledContext(t *testing.T) {
	dir := project(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, Options{Patterns: []string{"**/*.md"}, BaseDir: dir})
	assert.ErrorIs(t, err, context.Canceled)
}
