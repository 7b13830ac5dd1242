// Package discovery finds the documents a project configures for analysis
// by expanding the glob patterns from its config file.
package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/archer884/coherity/internal/lint"
	"github.com/bmatcuk/doublestar/v4"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against,
	// relative to BaseDir. An empty or nil list means no files are
	// discovered.
	Patterns []string

	// Ignore lists patterns for files and directories to leave out.
	Ignore []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// UseGitignore enables filtering by .gitignore rules.
	UseGitignore bool
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Paths are joined onto BaseDir as given. Results are
// deduplicated and sorted. The walk stops early when ctx is cancelled.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	patterns := validPatterns(opts.Patterns)
	if len(patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:      ctx,
		baseDir:  baseDir,
		absBase:  absBase,
		patterns: patterns,
		ignore:   validPatterns(opts.Ignore),
		seen:     make(map[string]bool),
	}
	if opts.UseGitignore {
		w.git = lint.NewGitignoreMatcher(absBase)
	}

	if err := filepath.WalkDir(absBase, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// validPatterns returns the patterns that are syntactically valid.
func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

type walker struct {
	ctx      context.Context
	baseDir  string
	absBase  string
	patterns []string
	ignore   []string
	git      *lint.GitignoreMatcher
	seen     map[string]bool
	result   []string
}

func (w *walker) visit(path string, d fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}
	if err := w.ctx.Err(); err != nil {
		return err
	}

	rel, err := filepath.Rel(w.absBase, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if w.skip(path, rel, d) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		return nil
	}

	if matchAny(w.patterns, rel) && !w.seen[rel] {
		w.seen[rel] = true
		w.result = append(w.result, filepath.Join(w.baseDir, filepath.FromSlash(rel)))
	}
	return nil
}

// skip reports whether path is excluded by the repository directory,
// ignore patterns, or .gitignore rules.
func (w *walker) skip(path, rel string, d fs.DirEntry) bool {
	if d.IsDir() && d.Name() == ".git" {
		return true
	}
	if matchAny(w.ignore, rel) {
		return true
	}
	if d.IsDir() && matchAny(w.ignore, rel+"/") {
		return true
	}
	return w.git != nil && w.git.IsIgnored(path, d.IsDir())
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
