package lint

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// StripFrontMatter removes YAML front matter delimited by "---\n"
// from the beginning of source. It returns the front matter block
// (including delimiters) and the remaining content. If no front
// matter is found, prefix is nil and content equals source.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}

// ParseFrontMatter decodes the YAML or TOML front matter of source.
// It returns nil when source has none.
func ParseFrontMatter(source []byte) (map[string]any, error) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	d := frontmatter.Get(ctx)
	if d == nil {
		return nil, nil
	}

	var meta map[string]any
	if err := d.Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}
	return meta, nil
}

// AnalysisEnabled reports whether front matter opts the document out of
// readability analysis with "readability: false". Anything else, including
// a missing key, leaves analysis on.
func AnalysisEnabled(meta map[string]any) bool {
	v, ok := meta["readability"]
	if !ok {
		return true
	}
	b, ok := v.(bool)
	return !ok || b
}
