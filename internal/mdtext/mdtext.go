// Package mdtext extracts readable prose from a goldmark Markdown AST.
package mdtext

import (
	"bytes"
	"strings"

	"github.com/archer884/coherity/internal/segment"
	"github.com/yuin/goldmark/ast"
)

// ExtractPlainText returns the text content of node with inline markup
// removed. Link and image text is kept, code spans keep their literal
// content and soft line breaks become spaces. Block children are separated
// by a blank line. Code blocks, HTML blocks and raw HTML are dropped.
func ExtractPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	writeNode(&b, node, source)
	return strings.TrimSpace(b.String())
}

func writeNode(b *strings.Builder, n ast.Node, source []byte) {
	switch v := n.(type) {
	case *ast.Text:
		b.Write(v.Segment.Value(source))
		if v.SoftLineBreak() || v.HardLineBreak() {
			b.WriteByte(' ')
		}
		return
	case *ast.String:
		b.Write(v.Value)
		return
	case *ast.AutoLink:
		b.Write(v.Label(source))
		return
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock,
		*ast.RawHTML, *ast.ThematicBreak:
		return
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == ast.TypeBlock && c.PreviousSibling() != nil && b.Len() > 0 {
			b.WriteString("\n\n")
		}
		writeNode(b, c, source)
	}
}

// ExtractProse returns the paragraph text of a whole document, one block
// per paragraph, separated by blank lines. Headings, code, HTML and tables
// are skipped. A paragraph that does not end in sentence punctuation (list
// items, captions) is closed with a period so it is not merged with the
// next one during sentence splitting.
func ExtractProse(doc ast.Node, source []byte) string {
	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			if IsTable(n, source) {
				return ast.WalkSkipChildren, nil
			}
			text := ExtractPlainText(n, source)
			if text != "" {
				blocks = append(blocks, terminate(text))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(blocks, "\n\n")
}

func terminate(text string) string {
	switch text[len(text)-1] {
	case '.', '!', '?', ':', ';':
		return text
	}
	return text + "."
}

// Paragraphs returns the paragraphs of doc in document order, nested ones
// included. Pipe tables are left out.
func Paragraphs(doc ast.Node, source []byte) []*ast.Paragraph {
	var paras []*ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if p, ok := n.(*ast.Paragraph); ok && !IsTable(p, source) {
			paras = append(paras, p)
		}
		return ast.WalkContinue, nil
	})
	return paras
}

// IsTable reports whether a paragraph's first line starts with a pipe.
// goldmark without the table extension parses tables as paragraphs.
func IsTable(n ast.Node, source []byte) bool {
	lines := n.Lines()
	if lines.Len() == 0 {
		return false
	}
	seg := lines.At(0)
	return bytes.HasPrefix(bytes.TrimSpace(seg.Value(source)), []byte("|"))
}

// CountWords returns the number of Unicode words in text.
func CountWords(text string) int {
	return segment.CountWords(text)
}

// CountCharacters returns the number of letter and number characters in
// text, counting each grapheme once.
func CountCharacters(text string) int {
	return segment.CountCharacters(text)
}
