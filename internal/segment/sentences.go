package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter partitions text into sentences.
type Splitter interface {
	Split(text string) []string
}

// SentenceSplitter is an abbreviation-aware Punkt sentence splitter backed by
// a pre-trained English model. The model is loaded once by
// NewSentenceSplitter and only read afterwards, so a SentenceSplitter may be
// shared between goroutines.
type SentenceSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSentenceSplitter loads the English Punkt model.
func NewSentenceSplitter() (*SentenceSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading english sentence model: %w", err)
	}
	return &SentenceSplitter{tokenizer: tokenizer}, nil
}

// Split returns the sentences of text in document order. Surrounding
// whitespace is trimmed and whitespace-only segments are dropped, so empty
// or blank input yields no sentences.
func (s *SentenceSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(sent.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

var _ Splitter = (*SentenceSplitter)(nil)
