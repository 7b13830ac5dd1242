package paragraphreadability

import (
	"testing"

	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/readability"
	"github.com/archer884/coherity/internal/rules/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hard scores far above grade 14 on every grade formula.
const hard = "The implementation of concurrent distributed systems " +
	"requires sophisticated understanding of fundamental " +
	"computational paradigms and synchronization mechanisms " +
	"that must guarantee linearizability across heterogeneous " +
	"processing environments and architectural configurations."

const easy = "The cat sat on the mat and the dog lay on the rug. " +
	"They were both very happy to be at home on a warm day."

func newFile(t *testing.T, src string) *lint.File {
	t.Helper()
	f, err := lint.NewFile("essay.md", []byte(src))
	require.NoError(t, err)
	return f
}

func ariRule() *Rule {
	return &Rule{Limits: settings.Limits{Formula: "ari", MaxGrade: 14, MinWords: 20}}
}

func TestCheck_HardParagraph(t *testing.T) {
	diags := ariRule().Check(newFile(t, "# Heading\n\n"+easy+"\n\n"+hard+"\n"))
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "MDS023", d.RuleID)
	assert.Equal(t, "paragraph-readability", d.RuleName)
	assert.Equal(t, lint.Warning, d.Severity)
	assert.Equal(t, "essay.md:5:1", d.Position())
	assert.Regexp(t, `^paragraph readability grade too high \(ari \d+\.\d > 14\.0\)$`, d.Message)
	require.NotNil(t, d.Measure)
	assert.Equal(t, "ari", d.Measure.Name)
	assert.Greater(t, d.Measure.Value, 14.0)
}

func TestCheck_EasyParagraph(t *testing.T) {
	assert.Empty(t, ariRule().Check(newFile(t, easy+"\n")))
}

func TestCheck_ShortParagraphNotScored(t *testing.T) {
	r := &Rule{Limits: settings.Limits{Formula: "ari", MaxGrade: -100, MinWords: 20}}
	assert.Empty(t, r.Check(newFile(t, "Notwithstanding extraordinarily institutional considerations.\n")))
}

func TestCheck_InlineMarkupIsText(t *testing.T) {
	src := "The **implementation** of *concurrent* distributed systems requires " +
		"`sophisticated` understanding of [fundamental](https://example.com) computational " +
		"paradigms and synchronization mechanisms that must guarantee linearizability " +
		"across heterogeneous processing environments and architectural configurations.\n"
	assert.Len(t, ariRule().Check(newFile(t, src)), 1)
}

func TestCheck_EmptyFormulaFallsBackToARI(t *testing.T) {
	r := &Rule{Limits: settings.Limits{MaxGrade: 14, MinWords: 20}}
	diags := r.Check(newFile(t, hard+"\n"))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "(ari ")
}

func TestCheck_ReadingEaseComparesMinimum(t *testing.T) {
	r := &Rule{Limits: settings.Limits{Formula: "reading-ease", MinEase: 30, MinWords: 20}}
	diags := r.Check(newFile(t, hard+"\n\n"+easy+"\n"))
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Contains(t, diags[0].Message, "paragraph reading ease too low (")
	assert.Contains(t, diags[0].Message, "< 30.0)")
}

func TestCheck_EveryGradeFormula(t *testing.T) {
	for _, name := range []string{"flesch-kincaid", "lix", "rix", "coleman-liau", "ari", "linsear-write"} {
		t.Run(name, func(t *testing.T) {
			r := &Rule{Limits: settings.Limits{Formula: name, MaxGrade: -100, MinWords: 20}}
			diags := r.Check(newFile(t, hard+"\n"))
			require.Len(t, diags, 1)
			assert.Equal(t, name, diags[0].Measure.Name)
		})
	}
}

func TestCheck_UsesFileAnalyzer(t *testing.T) {
	cache, err := readability.NewCache(readability.MustNew(), 8)
	require.NoError(t, err)

	f := newFile(t, hard+"\n\n"+hard+"\n")
	f.Analyzer = cache

	assert.Len(t, ariRule().Check(f), 2)
	assert.Equal(t, 1, cache.Len(), "identical paragraphs share one characterization")
}

func TestCheck_TableSkipped(t *testing.T) {
	src := "| Formula | Direction | Typical range |\n" +
		"|---------|-----------|---------------|\n" +
		"| `reading-ease` | higher is easier | 0 to 100 |\n" +
		"| `flesch-kincaid` | lower is easier | 0 to 18 |\n"
	r := &Rule{Limits: settings.Limits{Formula: "ari", MaxGrade: -100, MinWords: 1}}
	assert.Empty(t, r.Check(newFile(t, src)))
}

func TestApplySettings(t *testing.T) {
	r := &Rule{Limits: defaults()}
	require.NoError(t, r.ApplySettings(map[string]any{
		"formula":   "cli",
		"max-grade": 10,
		"min-words": 40,
	}))
	assert.Equal(t, settings.Limits{Formula: "coleman-liau", MaxGrade: 10, MinEase: 30, MinWords: 40}, r.Limits)
}

func TestApplySettings_Errors(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown key":     {"max-sentences": 3},
		"unknown formula": {"formula": "smog"},
		"grade type":      {"max-grade": "hard"},
		"words type":      {"min-words": 2.5},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			err := (&Rule{}).ApplySettings(m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "paragraph-readability")
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, map[string]any{
		"formula":   "ari",
		"max-grade": 14.0,
		"min-ease":  30.0,
		"min-words": 20,
	}, (&Rule{}).DefaultSettings())
}

func TestIdentity(t *testing.T) {
	r := &Rule{}
	assert.Equal(t, "MDS023", r.ID())
	assert.Equal(t, "paragraph-readability", r.Name())
	assert.Equal(t, "readability", r.Category())
}
