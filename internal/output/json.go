package output

import (
	"encoding/json"
	"io"
	"math"

	"github.com/archer884/coherity/internal/lint"
)

// JSONFormatter outputs diagnostics as a JSON array.
type JSONFormatter struct{}

type jsonDiagnostic struct {
	File     string       `json:"file"`
	Line     int          `json:"line"`
	Column   int          `json:"column"`
	Rule     string       `json:"rule"`
	Name     string       `json:"name"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Measure  *jsonMeasure `json:"measure,omitempty"`
}

type jsonMeasure struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Limit float64 `json:"limit"`
}

// Format writes diagnostics as a pretty-printed JSON array, [] when there
// are none. A diagnostic that measured something carries the value and
// the limit it broke.
func (f *JSONFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	items := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		var m *jsonMeasure
		if d.Measure != nil {
			m = &jsonMeasure{Name: d.Measure.Name, Value: d.Measure.Value, Limit: d.Measure.Limit}
		}
		items = append(items, jsonDiagnostic{
			File:     d.File,
			Line:     d.Line,
			Column:   d.Column,
			Rule:     d.RuleID,
			Name:     d.RuleName,
			Severity: string(d.Severity),
			Message:  d.Message,
			Measure:  m,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

type jsonScoreReport struct {
	File      string              `json:"file"`
	Words     int                 `json:"words"`
	Sentences int                 `json:"sentences"`
	Syllables int                 `json:"syllables"`
	Scores    map[string]*float64 `json:"scores"`
}

// FormatScores writes reports as a pretty-printed JSON array. Unavailable
// scores are null.
func (f *JSONFormatter) FormatScores(w io.Writer, reports []ScoreReport) error {
	items := make([]jsonScoreReport, 0, len(reports))
	for _, r := range reports {
		scores := make(map[string]*float64, len(r.Scores))
		for _, s := range r.Scores {
			if !s.Available() {
				scores[s.Name] = nil
				continue
			}
			v := math.Round(s.Value*100) / 100
			scores[s.Name] = &v
		}
		items = append(items, jsonScoreReport{
			File:      r.File,
			Words:     r.Words,
			Sentences: r.Sentences,
			Syllables: r.Syllables,
			Scores:    scores,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
