// Package documentreadability scores the prose of a whole document.
package documentreadability

import (
	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/mdtext"
	"github.com/archer884/coherity/internal/rule"
	"github.com/archer884/coherity/internal/rules/settings"
)

const name = "document-readability"

// DefaultFormula is the Flesch-Kincaid grade level.
const DefaultFormula = "flesch-kincaid"

func defaults() settings.Limits {
	return settings.Limits{
		Formula:  DefaultFormula,
		MaxGrade: 12.0,
		MinEase:  50.0,
		MinWords: 100,
	}
}

func init() {
	rule.Register(&Rule{Limits: defaults()})
}

// Rule judges all paragraph prose of a document taken together. The
// finding is reported on line 1.
type Rule struct {
	settings.Limits
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "MDS025" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return name }

// Category implements rule.Rule.
func (r *Rule) Category() string { return rule.CategoryReadability }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	prose := mdtext.ExtractProse(f.AST, f.Source)
	if prose == "" {
		return nil
	}
	c := f.Characterize(prose)
	if !r.Scored(c) {
		return nil
	}

	formula := r.Resolve(DefaultFormula)
	m, bad := r.Judge(formula, formula.Score(c))
	if !bad {
		return nil
	}
	return []lint.Diagnostic{{
		File:     f.Path,
		Line:     1,
		Column:   1,
		RuleID:   r.ID(),
		RuleName: name,
		Severity: lint.Warning,
		Message:  settings.Describe("document", formula, m),
		Measure:  m,
	}}
}

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(m map[string]any) error {
	for k, v := range m {
		ok, err := r.Apply(name, k, v)
		if err != nil {
			return err
		}
		if !ok {
			return settings.UnknownError(name, k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return defaults().Map()
}

var _ rule.Configurable = (*Rule)(nil)
