package lint

import (
	"fmt"
	"sort"
)

// Severity is how strongly a finding should be taken.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Measure is the value a rule compared against its limit.
type Measure struct {
	// Name is the formula or the counted unit, such as "ari" or "words".
	Name  string
	Value float64
	Limit float64
}

// Diagnostic is one finding reported by a rule.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	RuleID   string
	RuleName string
	Severity Severity
	Message  string
	// Measure is set by rules that score or count something.
	Measure *Measure
}

// Position formats the location as file:line:col.
func (d Diagnostic) Position() string {
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
}

// SortDiagnostics orders diags by file, line and column. Findings at the
// same position keep the order the rules produced them in.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		switch {
		case a.File != b.File:
			return a.File < b.File
		case a.Line != b.Line:
			return a.Line < b.Line
		default:
			return a.Column < b.Column
		}
	})
}
