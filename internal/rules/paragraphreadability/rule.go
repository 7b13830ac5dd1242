// Package paragraphreadability scores each paragraph on its own.
package paragraphreadability

import (
	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/mdtext"
	"github.com/archer884/coherity/internal/rule"
	"github.com/archer884/coherity/internal/rules/settings"
)

const name = "paragraph-readability"

// DefaultFormula is the Automated Readability Index.
const DefaultFormula = "ari"

func defaults() settings.Limits {
	return settings.Limits{
		Formula:  DefaultFormula,
		MaxGrade: 14.0,
		MinEase:  30.0,
		MinWords: 20,
	}
}

func init() {
	rule.Register(&Rule{Limits: defaults()})
}

// Rule flags paragraphs whose score breaks the configured limit.
// Paragraphs shorter than MinWords are too small to score reliably.
type Rule struct {
	settings.Limits
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "MDS023" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return name }

// Category implements rule.Rule.
func (r *Rule) Category() string { return rule.CategoryReadability }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	formula := r.Resolve(DefaultFormula)

	var diags []lint.Diagnostic
	for _, para := range mdtext.Paragraphs(f.AST, f.Source) {
		c := f.Characterize(mdtext.ExtractPlainText(para, f.Source))
		if !r.Scored(c) {
			continue
		}
		m, bad := r.Judge(formula, formula.Score(c))
		if !bad {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			File:     f.Path,
			Line:     f.BlockLine(para),
			Column:   1,
			RuleID:   r.ID(),
			RuleName: name,
			Severity: lint.Warning,
			Message:  settings.Describe("paragraph", formula, m),
			Measure:  m,
		})
	}
	return diags
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
