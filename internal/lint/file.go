package lint

import (
	"bytes"

	"github.com/archer884/coherity/internal/readability"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// File holds a parsed Markdown document and its source.
type File struct {
	Path   string
	Source []byte
	Lines  [][]byte
	AST    ast.Node

	// FrontMatter is the stripped front matter block, delimiters included.
	FrontMatter []byte
	// LineOffset is the number of lines removed with the front matter.
	LineOffset int

	// Analyzer characterizes prose for readability rules. When nil, the
	// first call to Characterize installs a private Characterizer.
	Analyzer readability.Analyzer
}

// NewFile parses source as Markdown and returns a File.
func NewFile(path string, source []byte) (*File, error) {
	reader := text.NewReader(source)
	parser := goldmark.DefaultParser()
	node := parser.Parse(reader)

	lines := bytes.Split(source, []byte("\n"))

	return &File{
		Path:   path,
		Source: source,
		Lines:  lines,
		AST:    node,
	}, nil
}

// NewFileFromSource is like NewFile but optionally strips front matter
// first. The stripped block is kept in FrontMatter and LineOffset records
// how many lines it spanned so diagnostics can be mapped back.
func NewFileFromSource(path string, source []byte, stripFrontMatter bool) (*File, error) {
	var prefix []byte
	content := source
	if stripFrontMatter {
		prefix, content = StripFrontMatter(source)
	}

	f, err := NewFile(path, content)
	if err != nil {
		return nil, err
	}
	f.FrontMatter = prefix
	f.LineOffset = bytes.Count(prefix, []byte("\n"))
	return f, nil
}

// LineOfOffset converts a byte offset in Source to a 1-based line number.
func (f *File) LineOfOffset(offset int) int {
	line := 1
	for i := 0; i < offset && i < len(f.Source); i++ {
		if f.Source[i] == '\n' {
			line++
		}
	}
	return line
}

// BlockLine returns the 1-based line a block node starts on. A block with
// no source lines reports line 1.
func (f *File) BlockLine(n ast.Node) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 1
	}
	return f.LineOfOffset(lines.At(0).Start)
}

// AdjustDiagnostics shifts diagnostic lines by LineOffset so they refer to
// the original file including its front matter.
func (f *File) AdjustDiagnostics(diags []Diagnostic) {
	if f.LineOffset == 0 {
		return
	}
	for i := range diags {
		diags[i].Line += f.LineOffset
	}
}

// Characterize returns the readability characterization of text using the
// file's Analyzer.
func (f *File) Characterize(text string) *readability.Characterization {
	if f.Analyzer == nil {
		f.Analyzer = readability.MustNew()
	}
	return f.Analyzer.Characterize(text)
}
