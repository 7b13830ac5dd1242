// Package syllable estimates English syllable counts from spelling alone.
//
// The estimate is a rule-based approximation: it counts the starts of vowel
// runs and corrects for a handful of two-letter contexts where that naive
// rule is usually wrong. No dictionary is consulted.
package syllable

import "strings"

type pair struct{ prev, cur rune }

// vowelOverridePairs split into two syllables even though both letters are
// vowels: names like Breanne and Adreann, unlike bread and lead.
var vowelOverridePairs = [...]pair{
	{'i', 'a'},
	{'e', 'a'},
}

// endSensitivePairs separate syllables unless they end the word.
var endSensitivePairs = [...]pair{
	{'i', 'e'},
	{'y', 'a'},
	{'e', 's'},
	{'e', 'd'},
}

// sentinel precedes the first letter so it is evaluated as a fresh run.
const sentinel = ' '

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isVowelOverride(p pair) bool {
	for _, o := range vowelOverridePairs {
		if o == p {
			return true
		}
	}
	return false
}

func isEndSensitive(p pair) bool {
	for _, o := range endSensitivePairs {
		if o == p {
			return true
		}
	}
	return false
}

// Estimate returns the estimated number of syllables in word. Matching is
// case-insensitive. A word without vowels yields 0.
func Estimate(word string) int {
	normalized := strings.ToLower(word)
	runes := []rune(normalized)

	count := 0
	prev := rune(sentinel)
	for _, cur := range runes {
		if isVowel(cur) {
			p := pair{prev, cur}
			if !isVowel(prev) || isVowelOverride(p) || isEndSensitive(p) {
				count++
			}
		}
		prev = cur
	}

	if len(runes) > 2 {
		s0, s1 := runes[len(runes)-2], runes[len(runes)-1]
		silentE := s1 == 'e' && s0 != 'e' && normalized != "the"
		if isEndSensitive(pair{s0, s1}) || silentE {
			count--
		}
	}

	// Unreachable: every retraction needs a vowel in the word and the
	// first vowel always counts, so count is at least 1 before it.
	if count < 0 {
		return 0
	}
	return count
}

// Total returns the sum of Estimate over words.
func Total(words []string) int {
	n := 0
	for _, w := range words {
		n += Estimate(w)
	}
	return n
}
