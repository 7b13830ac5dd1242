package output

import (
	"math"

	"github.com/archer884/coherity/internal/readability"
)

// ScoreReport holds the counts and formula scores of one document.
type ScoreReport struct {
	File      string
	Words     int
	Sentences int
	Syllables int
	Scores    []FormulaScore
}

// FormulaScore is one formula's value. Value is NaN when the document has
// too little text for the formula.
type FormulaScore struct {
	Name  string
	Title string
	Value float64
}

// Available reports whether the score is a finite number.
func (s FormulaScore) Available() bool {
	return !math.IsNaN(s.Value) && !math.IsInf(s.Value, 0)
}

// NewScoreReport evaluates every formula over c.
func NewScoreReport(file string, c *readability.Characterization) ScoreReport {
	r := ScoreReport{
		File:      file,
		Words:     c.WordCount(),
		Sentences: c.SentenceCount(),
		Syllables: c.SyllableCount(),
	}
	for _, f := range readability.Formulas() {
		r.Scores = append(r.Scores, FormulaScore{
			Name:  f.Name,
			Title: f.Title,
			Value: f.Score(c),
		})
	}
	return r
}
