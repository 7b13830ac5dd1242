package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreMatcher checks whether a path is ignored by .gitignore files
// found in a directory tree and its ancestors. Patterns from deeper files
// take precedence, so negations in a nested .gitignore re-include paths.
type GitignoreMatcher struct {
	matcher gitignore.Matcher
}

// NewGitignoreMatcher collects .gitignore files above and below root.
// Unreadable files are skipped.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return &GitignoreMatcher{matcher: gitignore.NewMatcher(nil)}
	}

	var patterns []gitignore.Pattern
	for _, gi := range ancestorGitignores(absRoot) {
		patterns = append(patterns, readGitignore(gi)...)
	}

	_ = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && info.Name() == ".gitignore" {
			patterns = append(patterns, readGitignore(path)...)
		}
		return nil
	})

	return &GitignoreMatcher{matcher: gitignore.NewMatcher(patterns)}
}

// IsIgnored reports whether absPath is ignored.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	return m.matcher.Match(splitPath(absPath), isDir)
}

// readGitignore parses one .gitignore. Patterns are scoped to the
// directory holding the file.
func readGitignore(path string) []gitignore.Pattern {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	domain := splitPath(filepath.Dir(path))
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := trimTrailingWhitespace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// ancestorGitignores finds .gitignore files above root, ordered from the
// filesystem root down to root's parent.
func ancestorGitignores(root string) []string {
	var found []string
	dir := filepath.Dir(root)
	for {
		gi := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gi); err == nil {
			found = append([]string{gi}, found...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return found
}

// splitPath turns an absolute path into the component slice the matcher
// works on.
func splitPath(absPath string) []string {
	p := filepath.ToSlash(strings.TrimPrefix(absPath, filepath.VolumeName(absPath)))
	return strings.Split(strings.Trim(p, "/"), "/")
}

// trimTrailingWhitespace removes trailing spaces and tabs unless the last
// space is escaped with a backslash.
func trimTrailingWhitespace(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i < len(s) && i > 0 && s[i-1] == '\\' {
		return s[:i-1] + " "
	}
	return s[:i]
}
