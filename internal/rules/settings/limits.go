package settings

import (
	"fmt"
	"math"

	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/readability"
)

// Limits is the formula and thresholds shared by the readability rules.
// Grade formulas are held to MaxGrade. Reading ease, where higher is
// easier, is held to MinEase. Text shorter than MinWords is not scored.
type Limits struct {
	Formula  string
	MaxGrade float64
	MinEase  float64
	MinWords int
}

// Formula looks up name. An empty or unknown name falls back to the
// formula called fallback.
func Formula(name, fallback string) readability.Formula {
	if name != "" {
		if f, err := readability.LookupFormula(name); err == nil {
			return f
		}
	}
	f, _ := readability.LookupFormula(fallback)
	return f
}

// Resolve returns the configured formula, or fallback.
func (l Limits) Resolve(fallback string) readability.Formula {
	return Formula(l.Formula, fallback)
}

// Scored reports whether c holds enough text to be judged.
func (l Limits) Scored(c *readability.Characterization) bool {
	return c.WordCount() >= l.MinWords && c.SentenceCount() > 0
}

// Judge compares score with the limit for the formula's direction and
// returns the measure when the limit is broken. Non-finite scores never
// break a limit.
func (l Limits) Judge(f readability.Formula, score float64) (*lint.Measure, bool) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, false
	}
	m := &lint.Measure{Name: f.Name, Value: math.Round(score*10) / 10}
	if f.HigherIsEasier {
		m.Limit = l.MinEase
		return m, score < l.MinEase
	}
	m.Limit = l.MaxGrade
	return m, score > l.MaxGrade
}

// Describe words a broken limit for scope, which is "paragraph" or
// "document".
func Describe(scope string, f readability.Formula, m *lint.Measure) string {
	if f.HigherIsEasier {
		return fmt.Sprintf("%s reading ease too low (%.1f < %.1f)", scope, m.Value, m.Limit)
	}
	return fmt.Sprintf("%s readability grade too high (%s %.1f > %.1f)",
		scope, m.Name, m.Value, m.Limit)
}

// Apply sets one key of a rule's settings. It reports false for keys that
// are not limits, leaving them to the rule.
func (l *Limits) Apply(rule, key string, v any) (bool, error) {
	switch key {
	case "formula":
		s, ok := String(v)
		if !ok {
			return true, TypeError(rule, key, "a string", v)
		}
		f, err := readability.LookupFormula(s)
		if err != nil {
			return true, fmt.Errorf("%s: %w", rule, err)
		}
		l.Formula = f.Name
	case "max-grade", "min-ease":
		n, ok := Float(v)
		if !ok {
			return true, TypeError(rule, key, "a number", v)
		}
		if key == "max-grade" {
			l.MaxGrade = n
		} else {
			l.MinEase = n
		}
	case "min-words":
		n, ok := Int(v)
		if !ok || n < 0 {
			return true, TypeError(rule, key, "a non-negative integer", v)
		}
		l.MinWords = n
	default:
		return false, nil
	}
	return true, nil
}

// Map renders l in settings form.
func (l Limits) Map() map[string]any {
	return map[string]any{
		"formula":   l.Formula,
		"max-grade": l.MaxGrade,
		"min-ease":  l.MinEase,
		"min-words": l.MinWords,
	}
}
