package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsDocument reports whether path has a Markdown or plain text extension.
func IsDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

// Expand turns command-line arguments into a sorted list of documents,
// each listed once. An argument names a file, a directory or a doublestar
// glob. Directories are walked for documents, leaving out gitignored
// paths when useGitignore is set. A file named outright is kept whatever
// its extension. A missing path is an error; a glob matching nothing is
// not.
func Expand(args []string, useGitignore bool) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, arg := range args {
		paths, err := expand(arg, useGitignore)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			key, err := filepath.Abs(p)
			if err != nil {
				key = p
			}
			if !seen[key] {
				seen[key] = true
				out = append(out, p)
			}
		}
	}
	slices.Sort(out)
	return out, nil
}

func expand(arg string, useGitignore bool) ([]string, error) {
	if !strings.ContainsAny(arg, "*?[{") {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %q: %w", arg, err)
		}
		if info.IsDir() {
			return walkDocuments(arg, useGitignore)
		}
		return []string{arg}, nil
	}

	matches, err := doublestar.FilepathGlob(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
	}
	var out []string
	for _, m := range matches {
		info, err := os.Stat(m)
		switch {
		case err != nil:
		case info.IsDir():
			docs, err := walkDocuments(m, useGitignore)
			if err != nil {
				return nil, err
			}
			out = append(out, docs...)
		case IsDocument(m):
			out = append(out, m)
		}
	}
	return out, nil
}

func walkDocuments(dir string, useGitignore bool) ([]string, error) {
	var ignored func(path string, isDir bool) bool
	if useGitignore {
		m := NewGitignoreMatcher(dir)
		ignored = func(path string, isDir bool) bool {
			abs, err := filepath.Abs(path)
			return err == nil && m.IsIgnored(abs, isDir)
		}
	}

	var docs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ignored != nil && path != dir && ignored(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsDocument(path) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return docs, nil
}
