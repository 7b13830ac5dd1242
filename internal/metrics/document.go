package metrics

import (
	"bytes"
	"fmt"

	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/mdtext"
	"github.com/archer884/coherity/internal/readability"
)

// Document is the shared metric input for a single file. The parsed file,
// its prose and the prose characterization are computed once on first use.
// A Document is not safe for concurrent use.
type Document struct {
	Path   string
	Source []byte

	analyzer readability.Analyzer

	file  *lint.File
	prose *string
	char  *readability.Characterization
	err   error
}

// NewDocument constructs a Document that characterizes its prose with
// analyzer.
func NewDocument(path string, source []byte, analyzer readability.Analyzer) *Document {
	return &Document{
		Path:     path,
		Source:   source,
		analyzer: analyzer,
	}
}

// ByteCount returns raw file byte count.
func (d *Document) ByteCount() int {
	return len(d.Source)
}

// LineCount returns the number of lines, counting a final line without a
// trailing newline.
func (d *Document) LineCount() int {
	if len(d.Source) == 0 {
		return 0
	}
	lines := bytes.Count(d.Source, []byte("\n"))
	if d.Source[len(d.Source)-1] != '\n' {
		lines++
	}
	return lines
}

// File returns the parsed document with its front matter stripped.
func (d *Document) File() (*lint.File, error) {
	if d.file != nil || d.err != nil {
		return d.file, d.err
	}
	f, err := lint.NewFileFromSource(d.Path, d.Source, true)
	if err != nil {
		d.err = fmt.Errorf("parsing markdown: %w", err)
		return nil, d.err
	}
	f.Analyzer = d.analyzer
	d.file = f
	return f, nil
}

// Prose returns the paragraph text of the document.
func (d *Document) Prose() (string, error) {
	if d.prose != nil {
		return *d.prose, nil
	}
	f, err := d.File()
	if err != nil {
		return "", err
	}
	prose := mdtext.ExtractProse(f.AST, f.Source)
	d.prose = &prose
	return prose, nil
}

// Characterization returns the readability characterization of the prose.
func (d *Document) Characterization() (*readability.Characterization, error) {
	if d.char != nil {
		return d.char, nil
	}
	prose, err := d.Prose()
	if err != nil {
		return nil, err
	}
	f, _ := d.File()
	d.char = f.Characterize(prose)
	return d.char, nil
}
