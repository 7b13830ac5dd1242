package metrics

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/archer884/coherity/internal/readability"
)

var registry = append([]Definition{
	{
		ID:           "MET001",
		Name:         "bytes",
		Description:  "File size measured in bytes.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.ByteCount())), nil
		},
	},
	{
		ID:           "MET002",
		Name:         "lines",
		Description:  "Total line count.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.LineCount())), nil
		},
	},
	{
		ID:           "MET003",
		Name:         "words",
		Description:  "Word count of the document prose.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			c, err := doc.Characterization()
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(c.WordCount())), nil
		},
	},
	{
		ID:           "MET004",
		Name:         "sentences",
		Description:  "Sentence count of the document prose.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			c, err := doc.Characterization()
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(c.SentenceCount())), nil
		},
	},
	{
		ID:           "MET005",
		Name:         "syllables-per-word",
		Description:  "Average syllables per word of the document prose.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			c, err := doc.Characterization()
			if err != nil {
				return UnavailableValue(), err
			}
			return ScoreValue(c.AverageSyllablesPerWord()), nil
		},
	},
}, formulaDefinitions(6)...)

// formulaDefinitions builds one metric per readability formula, numbered
// from first. Reading ease ranks ascending so the hardest text comes first.
func formulaDefinitions(first int) []Definition {
	var defs []Definition
	for i, f := range readability.Formulas() {
		order := OrderDesc
		if f.HigherIsEasier {
			order = OrderAsc
		}
		defs = append(defs, Definition{
			ID:           fmt.Sprintf("MET%03d", first+i),
			Name:         f.Name,
			Description:  f.Title + " of the document prose.",
			Kind:         KindFloat,
			Precision:    2,
			Default:      f.Name == "flesch-kincaid" || f.Name == "reading-ease",
			DefaultOrder: order,
			Compute: func(doc *Document) (Value, error) {
				c, err := doc.Characterization()
				if err != nil {
					return UnavailableValue(), err
				}
				return ScoreValue(f.Score(c)), nil
			},
		})
	}
	return defs
}

// All returns every metric ordered by ID.
func All() []Definition {
	defs := slices.Clone(registry)
	slices.SortFunc(defs, func(a, b Definition) int { return strings.Compare(a.ID, b.ID) })
	return defs
}

// Defaults returns the metrics ranked when none are named.
func Defaults() []Definition {
	return slices.DeleteFunc(All(), func(d Definition) bool { return !d.Default })
}

// Lookup finds a metric by ID, ignoring case, or by name.
func Lookup(query string) (Definition, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Definition{}, false
	}
	i := slices.IndexFunc(registry, func(d Definition) bool {
		return strings.EqualFold(d.ID, q) || d.Name == strings.ToLower(q)
	})
	if i < 0 {
		return Definition{}, false
	}
	return registry[i], true
}

// Resolve maps metric names or IDs to definitions, dropping repeats. No
// names selects Defaults.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}
	var defs []Definition
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetric(name)
		}
		if !slices.ContainsFunc(defs, func(d Definition) bool { return d.ID == def.ID }) {
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		return nil, errors.New("no metrics selected")
	}
	return defs, nil
}

// SplitList splits a comma-separated --metrics value, skipping blanks.
func SplitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func unknownMetric(name string) error {
	var known []string
	for _, d := range registry {
		known = append(known, d.Name)
	}
	slices.Sort(known)
	return fmt.Errorf("unknown metric %q (available: %s)", strings.TrimSpace(name), strings.Join(known, ", "))
}
