package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_Position(t *testing.T) {
	d := Diagnostic{File: "guide/intro.md", Line: 12, Column: 1}
	assert.Equal(t, "guide/intro.md:12:1", d.Position())
}

func TestSortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{File: "b.md", Line: 1, Column: 1, RuleID: "MDS025"},
		{File: "a.md", Line: 9, Column: 1, RuleID: "MDS023"},
		{File: "a.md", Line: 3, Column: 1, RuleID: "MDS024"},
		{File: "a.md", Line: 3, Column: 1, RuleID: "MDS023"},
	}
	SortDiagnostics(diags)

	var got []string
	for _, d := range diags {
		got = append(got, d.Position()+" "+d.RuleID)
	}
	assert.Equal(t, []string{
		"a.md:3:1 MDS024",
		"a.md:3:1 MDS023",
		"a.md:9:1 MDS023",
		"b.md:1:1 MDS025",
	}, got)
}
