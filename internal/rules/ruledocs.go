// Package rules holds the lint rules and their embedded documentation.
package rules

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/archer884/coherity/internal/docfs"
)

//go:embed MDS*/README.md
var rulesFS embed.FS

// RuleInfo holds metadata extracted from a rule README's front matter.
type RuleInfo = docfs.Info

// ListRules returns all embedded rules sorted by ID.
func ListRules() ([]RuleInfo, error) {
	return listRulesFromFS(rulesFS)
}

// LookupRule finds a rule by ID (e.g. "MDS023") or name
// (e.g. "paragraph-readability") and returns its full README content.
func LookupRule(query string) (string, error) {
	return lookupRuleFromFS(rulesFS, query)
}

// listRulesFromFS drops docs without a status; a rule README is only
// published once it declares one.
func listRulesFromFS(fsys fs.FS) ([]RuleInfo, error) {
	docs, err := docfs.List(fsys)
	if err != nil {
		return nil, err
	}
	out := docs[:0]
	for _, d := range docs {
		if d.Status != "" {
			out = append(out, d)
		}
	}
	return out, nil
}

func lookupRuleFromFS(fsys fs.FS, query string) (string, error) {
	rules, err := listRulesFromFS(fsys)
	if err != nil {
		return "", err
	}
	if r, ok := docfs.Find(rules, query); ok {
		return r.Content, nil
	}
	return "", fmt.Errorf("unknown rule %q", query)
}
