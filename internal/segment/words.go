// Package segment adapts Unicode text segmentation and sentence boundary
// detection to the plain string slices the analysis packages consume.
package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Words returns the words of text in document order, following the Unicode
// word boundary rules (UAX #29). Segments without any letter or number, such
// as whitespace and punctuation, are dropped.
func Words(text string) []string {
	var words []string
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(seg) {
			words = append(words, seg)
		}
	}
	return words
}

// CountWords returns len(Words(text)) without allocating the slice.
func CountWords(text string) int {
	n := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(seg) {
			n++
		}
	}
	return n
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Graphemes returns the user-perceived characters of text.
func Graphemes(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// GraphemeCount returns the number of user-perceived characters in text.
// Combining marks do not add to the count.
func GraphemeCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// CountCharacters returns the number of graphemes in text whose base
// character is a letter or a number. Punctuation, symbols and whitespace
// are not counted.
func CountCharacters(text string) int {
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		r, _ := utf8.DecodeRuneInString(g.Str())
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			n++
		}
	}
	return n
}
