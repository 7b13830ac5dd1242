package output

import (
	"io"

	"github.com/archer884/coherity/internal/lint"
)

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}

// ScoreFormatter defines the interface for outputting score reports.
type ScoreFormatter interface {
	FormatScores(w io.Writer, reports []ScoreReport) error
}

// New returns the formatter for the named format ("text" or "json").
func New(format string, color bool) (Formatter, ScoreFormatter, bool) {
	switch format {
	case "", "text":
		f := &TextFormatter{Color: color}
		return f, f, true
	case "json":
		f := &JSONFormatter{}
		return f, f, true
	}
	return nil, nil, false
}
