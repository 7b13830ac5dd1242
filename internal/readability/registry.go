package readability

import (
	"fmt"
	"strings"
)

// Formula is a named readability score over a Characterization.
type Formula struct {
	Name   string
	Abbrev string
	Title  string
	// HigherIsEasier is true for scales where a larger value means easier
	// text (Flesch reading ease). All other formulas are grade-like.
	HigherIsEasier bool
	Score          func(c *Characterization) float64
}

var formulas = []Formula{
	{
		Name:   "flesch-kincaid",
		Abbrev: "fkgl",
		Title:  "Flesch-Kincaid Grade Level",
		Score:  (*Characterization).FleschKincaidGradeLevel,
	},
	{
		Name:           "reading-ease",
		Abbrev:         "fre",
		Title:          "Flesch Reading Ease",
		HigherIsEasier: true,
		Score:          (*Characterization).FleschReadingEase,
	},
	{
		Name:   "lix",
		Abbrev: "lix",
		Title:  "LIX",
		Score:  (*Characterization).LIX,
	},
	{
		Name:   "rix",
		Abbrev: "rix",
		Title:  "RIX",
		Score:  (*Characterization).RIX,
	},
	{
		Name:   "coleman-liau",
		Abbrev: "cli",
		Title:  "Coleman-Liau Index",
		Score:  (*Characterization).ColemanLiau,
	},
	{
		Name:   "ari",
		Abbrev: "ari",
		Title:  "Automated Readability Index",
		Score:  (*Characterization).AutomatedReadabilityIndex,
	},
	{
		Name:   "linsear-write",
		Abbrev: "lw",
		Title:  "Linsear Write",
		Score:  (*Characterization).LinsearWrite,
	},
}

// Formulas returns all formulas in a fixed order.
func Formulas() []Formula {
	return append([]Formula(nil), formulas...)
}

// FormulaNames returns the names of all formulas.
func FormulaNames() []string {
	names := make([]string, 0, len(formulas))
	for _, f := range formulas {
		names = append(names, f.Name)
	}
	return names
}

// LookupFormula finds a formula by name or abbreviation, ignoring case.
func LookupFormula(query string) (Formula, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, f := range formulas {
		if f.Name == q || f.Abbrev == q {
			return f, nil
		}
	}
	return Formula{}, fmt.Errorf(
		"unknown formula %q (available: %s)",
		query, strings.Join(FormulaNames(), ", "),
	)
}

// Scores evaluates every formula, keyed by formula name.
func (c *Characterization) Scores() map[string]float64 {
	out := make(map[string]float64, len(formulas))
	for _, f := range formulas {
		out[f.Name] = f.Score(c)
	}
	return out
}
