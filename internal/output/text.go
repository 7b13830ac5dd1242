package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/archer884/coherity/internal/lint"
)

// TextFormatter writes one line per diagnostic and one aligned block per
// score report. Color adds ANSI escapes: cyan for locations and file
// names, yellow for rule IDs.
type TextFormatter struct {
	Color bool
}

const (
	cyan   = "\033[36m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func (f *TextFormatter) paint(color, s string) string {
	if !f.Color {
		return s
	}
	return color + s + reset
}

// Format writes each diagnostic as "file:line:col RULE message".
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			f.paint(cyan, d.Position()), f.paint(yellow, d.RuleID), d.Message); err != nil {
			return err
		}
	}
	return nil
}

// FormatScores writes one block per report: the file name, then one
// aligned "name value" line per count and formula. Unavailable scores
// print as "-".
func (f *TextFormatter) FormatScores(w io.Writer, reports []ScoreReport) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, f.paint(cyan, r.File)); err != nil {
			return err
		}

		lines := [][2]string{
			{"words", strconv.Itoa(r.Words)},
			{"sentences", strconv.Itoa(r.Sentences)},
			{"syllables", strconv.Itoa(r.Syllables)},
		}
		for _, s := range r.Scores {
			v := "-"
			if s.Available() {
				v = strconv.FormatFloat(s.Value, 'f', 2, 64)
			}
			lines = append(lines, [2]string{s.Name, v})
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "  %-16s %s\n", l[0], l[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
