package rule

import "github.com/archer884/coherity/internal/lint"

// Rule is a single lint rule that checks a document.
type Rule interface {
	ID() string
	Name() string
	Category() string
	Check(f *lint.File) []lint.Diagnostic
}

// Configurable is implemented by rules that have user-tunable settings.
type Configurable interface {
	ApplySettings(settings map[string]any) error
	DefaultSettings() map[string]any
}

// Rule categories.
const (
	CategoryReadability = "readability"
	CategoryStructure   = "structure"
)
