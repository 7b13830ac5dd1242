// Package docfs reads README.md files with YAML front matter from an
// embedded tree, one directory per rule or metric.
package docfs

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/archer884/coherity/internal/lint"
	"gopkg.in/yaml.v3"
)

// Info holds metadata from a README's front matter.
type Info struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

// List returns every parseable README under the top-level directories of
// fsys, sorted by ID. Files without front matter or without an id and name
// are skipped.
func List(fsys fs.FS) ([]Info, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading docs directory: %w", err)
	}

	var docs []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name()+"/README.md")
		if err != nil {
			continue
		}
		info, err := Parse(data)
		if err != nil {
			continue
		}
		docs = append(docs, info)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// Find returns the doc whose ID matches query case-insensitively or whose
// name matches exactly.
func Find(docs []Info, query string) (Info, bool) {
	q := strings.TrimSpace(query)
	for _, d := range docs {
		if strings.EqualFold(d.ID, q) || d.Name == strings.ToLower(q) {
			return d, true
		}
	}
	return Info{}, false
}

// Parse decodes the front matter of a README.
func Parse(data []byte) (Info, error) {
	prefix, _ := lint.StripFrontMatter(data)
	if prefix == nil {
		return Info{}, fmt.Errorf("missing front matter")
	}
	body := strings.TrimSuffix(strings.TrimPrefix(string(prefix), "---\n"), "---\n")

	var info Info
	if err := yaml.Unmarshal([]byte(body), &info); err != nil {
		return Info{}, fmt.Errorf("parsing front matter: %w", err)
	}
	if info.ID == "" {
		return Info{}, fmt.Errorf("front matter missing id")
	}
	if info.Name == "" {
		return Info{}, fmt.Errorf("front matter missing name")
	}
	info.Content = string(data)
	return info, nil
}
