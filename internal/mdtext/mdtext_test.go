package mdtext_test

import (
	"testing"

	"github.com/archer884/coherity/internal/mdtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func parse(src string) (ast.Node, []byte) {
	source := []byte(src)
	return goldmark.DefaultParser().Parse(text.NewReader(source)), source
}

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		markdown string
		expected string
	}{
		{"Hello world.\n", "Hello world."},
		{"Click [here](https://example.com) now.\n", "Click here now."},
		{"This is *important* and **bold** text.\n", "This is important and bold text."},
		{"Use `fmt.Println` to print.\n", "Use fmt.Println to print."},
		{"See ![alt text](image.png) here.\n", "See alt text here."},
		{"Click [**bold link**](https://example.com) now.\n", "Click bold link now."},
		{"Hello\nworld.\n", "Hello world."},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			doc, src := parse(tt.markdown)
			paras := mdtext.Paragraphs(doc, src)
			require.Len(t, paras, 1)
			assert.Equal(t, tt.expected, mdtext.ExtractPlainText(paras[0], src))
		})
	}
}

func TestExtractPlainText_DocumentSeparatesBlocks(t *testing.T) {
	doc, src := parse("One.\n\nTwo.\n")
	assert.Equal(t, "One.\n\nTwo.", mdtext.ExtractPlainText(doc, src))
}

func TestCountWords(t *testing.T) {
	for in, want := range map[string]int{
		"hello world":              2,
		"":                         0,
		"  hello   world  ":        2,
		"tailor-made, it's $17.50": 4,
	} {
		assert.Equal(t, want, mdtext.CountWords(in), in)
	}
}

func TestCountCharacters(t *testing.T) {
	for in, want := range map[string]int{
		"Hello, world!": 10,
		"abc 123":       6,
		"":              0,
		"...!!!":        0,
		"cafe\u0301":    4,
	} {
		assert.Equal(t, want, mdtext.CountCharacters(in), in)
	}
}

func TestExtractProse(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{"skips headings and code", "# Title\n\nFirst paragraph.\n\n```go\nx := 1\n```\n\nSecond one.\n",
			"First paragraph.\n\nSecond one."},
		{"terminates list items", "- apples\n- pears\n", "apples.\n\npears."},
		{"skips tables", "| a | b |\n|---|---|\n| 1 | 2 |\n\nAfter the table.\n", "After the table."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, src := parse(tt.markdown)
			assert.Equal(t, tt.expected, mdtext.ExtractProse(doc, src))
		})
	}
}

func TestParagraphs(t *testing.T) {
	doc, src := parse("# Notes\n\nFirst.\n\n| a | b |\n\n> Quoted.\n\n- item\n\nLast.\n")
	var got []string
	for _, p := range mdtext.Paragraphs(doc, src) {
		got = append(got, mdtext.ExtractPlainText(p, src))
	}
	assert.Equal(t, []string{"First.", "Quoted.", "Last."}, got)
}

func TestIsTable(t *testing.T) {
	doc, src := parse("| a | b |\n\nplain text\n")
	var flags []bool
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		flags = append(flags, mdtext.IsTable(n, src))
	}
	assert.Equal(t, []bool{true, false}, flags)
}
