package metrics

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/archer884/coherity/internal/docfs"
)

//go:embed MET*/README.md
var docsFS embed.FS

// DocInfo holds metadata extracted from a metric README's front matter.
type DocInfo = docfs.Info

// ListDocs returns all embedded metrics docs sorted by ID.
func ListDocs() ([]DocInfo, error) {
	return docfs.List(docsFS)
}

// LookupDoc finds a metric doc by ID (e.g. MET001) or name (e.g. bytes).
func LookupDoc(query string) (string, error) {
	return lookupDocFromFS(docsFS, query)
}

func lookupDocFromFS(fsys fs.FS, query string) (string, error) {
	docs, err := docfs.List(fsys)
	if err != nil {
		return "", err
	}
	if d, ok := docfs.Find(docs, query); ok {
		return d.Content, nil
	}
	return "", fmt.Errorf("unknown metric %q", query)
}
