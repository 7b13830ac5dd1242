// Package paragraphstructure limits how many sentences a paragraph holds
// and how long each sentence runs.
package paragraphstructure

import (
	"fmt"

	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/mdtext"
	"github.com/archer884/coherity/internal/rule"
	"github.com/archer884/coherity/internal/rules/settings"
)

const name = "paragraph-structure"

const (
	defaultMaxSentences = 6
	defaultMaxWords     = 40
)

func init() {
	rule.Register(&Rule{MaxSentences: defaultMaxSentences, MaxWords: defaultMaxWords})
}

// Rule flags paragraphs with more than MaxSentences sentences and each
// sentence longer than MaxWords words.
type Rule struct {
	MaxSentences int
	MaxWords     int
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "MDS024" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return name }

// Category implements rule.Rule.
func (r *Rule) Category() string { return rule.CategoryStructure }

// Check implements rule.Rule.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, para := range mdtext.Paragraphs(f.AST, f.Source) {
		c := f.Characterize(mdtext.ExtractPlainText(para, f.Source))
		line := f.BlockLine(para)

		if n := c.SentenceCount(); n > r.MaxSentences {
			diags = append(diags, r.finding(f, line,
				fmt.Sprintf("paragraph has too many sentences (%d > %d)", n, r.MaxSentences),
				&lint.Measure{Name: "sentences", Value: float64(n), Limit: float64(r.MaxSentences)}))
		}
		for _, n := range c.SentenceLengths {
			if n > r.MaxWords {
				diags = append(diags, r.finding(f, line,
					fmt.Sprintf("sentence too long (%d > %d words)", n, r.MaxWords),
					&lint.Measure{Name: "words", Value: float64(n), Limit: float64(r.MaxWords)}))
			}
		}
	}
	return diags
}

func (r *Rule) finding(f *lint.File, line int, msg string, m *lint.Measure) lint.Diagnostic {
	return lint.Diagnostic{
		File:     f.Path,
		Line:     line,
		Column:   1,
		RuleID:   r.ID(),
		RuleName: name,
		Severity: lint.Warning,
		Message:  msg,
		Measure:  m,
	}
}

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(m map[string]any) error {
	for k, v := range m {
		var target *int
		switch k {
		case "max-sentences":
			target = &r.MaxSentences
		case "max-words":
			target = &r.MaxWords
		default:
			return settings.UnknownError(name, k)
		}
		n, ok := settings.Int(v)
		if !ok || n < 1 {
			return settings.TypeError(name, k, "a positive integer", v)
		}
		*target = n
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{
		"max-sentences": defaultMaxSentences,
		"max-words":     defaultMaxWords,
	}
}

var _ rule.Configurable = (*Rule)(nil)
