// Package readability characterizes English documents and scores them with
// the standard readability formulas.
//
// A Characterizer turns text into a Characterization: its sentences, the word
// count of each sentence, its words, and the estimated syllable count of each
// word. The formulas are methods on Characterization and only read those
// statistics.
package readability

import (
	"github.com/archer884/coherity/internal/segment"
	"github.com/archer884/coherity/internal/syllable"
)

// Analyzer produces a Characterization for a document.
type Analyzer interface {
	Characterize(document string) *Characterization
}

// Characterizer characterizes documents for reading analysis. It owns the
// sentence model, which is built once by New and never modified, so one
// Characterizer may serve concurrent callers.
type Characterizer struct {
	splitter segment.Splitter
}

// New returns a Characterizer backed by the English sentence model.
func New() (*Characterizer, error) {
	s, err := segment.NewSentenceSplitter()
	if err != nil {
		return nil, err
	}
	return &Characterizer{splitter: s}, nil
}

// MustNew is like New but panics if the sentence model cannot be loaded.
// The model is compiled into the binary, so this only fails on a broken
// build.
func MustNew() *Characterizer {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// NewWithSplitter returns a Characterizer that uses s for sentence
// boundaries.
func NewWithSplitter(s segment.Splitter) *Characterizer {
	return &Characterizer{splitter: s}
}

// Characterize splits document into sentences and words and estimates the
// syllables of every word. Empty input yields an empty Characterization.
//
// Sentence lengths come from segmenting each sentence, while Words comes
// from segmenting the whole document, so the two word counts can differ
// slightly where a word straddles a sentence boundary.
func (c *Characterizer) Characterize(document string) *Characterization {
	sentences := c.splitter.Split(document)
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = segment.CountWords(s)
	}

	words := segment.Words(document)
	syllables := make([]int, len(words))
	for i, w := range words {
		syllables[i] = syllable.Estimate(w)
	}

	return &Characterization{
		Sentences:           sentences,
		SentenceLengths:     lengths,
		Words:               words,
		WordSyllableLengths: syllables,
	}
}

// Characterization is the statistical summary of one document. The slices
// are parallel: SentenceLengths[i] is the word count of Sentences[i] and
// WordSyllableLengths[j] is the syllable estimate for Words[j]. The strings
// share memory with the characterized document. Treat it as read-only.
type Characterization struct {
	Sentences           []string
	SentenceLengths     []int
	Words               []string
	WordSyllableLengths []int
}

// SentenceCount returns the number of sentences.
func (c *Characterization) SentenceCount() int { return len(c.Sentences) }

// WordCount returns the number of words in the whole document.
func (c *Characterization) WordCount() int { return len(c.Words) }

// SyllableCount returns the total estimated syllables.
func (c *Characterization) SyllableCount() int {
	n := 0
	for _, s := range c.WordSyllableLengths {
		n += s
	}
	return n
}

// LongWordCount returns the number of words at least LongWordThreshold
// graphemes long.
func (c *Characterization) LongWordCount() int {
	n := 0
	for _, w := range c.Words {
		if segment.GraphemeCount(w) >= LongWordThreshold {
			n++
		}
	}
	return n
}

// CharacterCount returns the number of letter and number graphemes across
// all words.
func (c *Characterization) CharacterCount() int {
	n := 0
	for _, w := range c.Words {
		n += segment.CountCharacters(w)
	}
	return n
}

// AverageSentenceLength returns the mean words per sentence (ASL).
func (c *Characterization) AverageSentenceLength() float64 {
	return Average(c.SentenceLengths)
}

// AverageSyllablesPerWord returns the mean syllables per word (ASW).
func (c *Characterization) AverageSyllablesPerWord() float64 {
	return Average(c.WordSyllableLengths)
}

var _ Analyzer = (*Characterizer)(nil)
