package readability

const (
	// LongWordThreshold is the grapheme length at which a word counts as
	// long for LIX and RIX.
	LongWordThreshold = 6

	// LinsearEasyWordMaxSyllables is the exclusive syllable bound for an
	// easy word in Linsear Write. Easy words score 1 point, others 3.
	LinsearEasyWordMaxSyllables = 3
)

// None of the formulas guard their denominators. A Characterization without
// sentences or words produces NaN or ±Inf, which callers must treat as
// undefined.

// FleschKincaidGradeLevel returns 0.39*ASL + 11.8*ASW - 15.59.
func (c *Characterization) FleschKincaidGradeLevel() float64 {
	asl, asw := c.fkValues()
	return (0.39 * asl) + (11.8 * asw) - 15.59
}

// FleschReadingEase returns 206.835 - 1.015*ASL - 84.6*ASW.
// Higher values mean easier text.
func (c *Characterization) FleschReadingEase() float64 {
	asl, asw := c.fkValues()
	return 206.835 - (1.015 * asl) - (84.6 * asw)
}

// LIX returns the long-word ratio plus ASL. The ratio is not scaled to a
// percentage.
func (c *Characterization) LIX() float64 {
	return c.longWordRatio() + c.AverageSentenceLength()
}

// RIX returns long words per sentence.
func (c *Characterization) RIX() float64 {
	return float64(c.LongWordCount()) / float64(c.SentenceCount())
}

// ColemanLiau returns
// 0.0588*(chars/words*100) - 0.296*(sentences/chars*100) - 15.8.
func (c *Characterization) ColemanLiau() float64 {
	chars := float64(c.CharacterCount())
	words := float64(c.WordCount())
	sentences := float64(c.SentenceCount())
	return 0.0588*(chars/words*100) - 0.296*(sentences/chars*100) - 15.8
}

// AutomatedReadabilityIndex returns
// 4.71*(chars/words) + 0.5*(words/sentences) - 21.43.
func (c *Characterization) AutomatedReadabilityIndex() float64 {
	chars := float64(c.CharacterCount())
	words := float64(c.WordCount())
	sentences := float64(c.SentenceCount())
	return 4.71*(chars/words) + 0.5*(words/sentences) - 21.43
}

// LinsearWrite scores each word 1 point if it has fewer than
// LinsearEasyWordMaxSyllables syllables and 3 points otherwise, divides the
// total by the sentence count, and halves the result, subtracting 1 when the
// provisional score is below 20.
func (c *Characterization) LinsearWrite() float64 {
	points := 0
	for _, s := range c.WordSyllableLengths {
		if s < LinsearEasyWordMaxSyllables {
			points++
		} else {
			points += 3
		}
	}

	r := float64(points) / float64(c.SentenceCount())
	if r < 20 {
		return r/2 - 1
	}
	return r / 2
}

func (c *Characterization) fkValues() (asl, asw float64) {
	return c.AverageSentenceLength(), c.AverageSyllablesPerWord()
}

func (c *Characterization) longWordRatio() float64 {
	return float64(c.LongWordCount()) / float64(c.WordCount())
}

// The document variants below characterize with a freshly built
// Characterizer. Reuse a Characterizer when scoring more than one text.

// FleschKincaidGradeLevel characterizes document and returns its
// Flesch-Kincaid grade level.
func FleschKincaidGradeLevel(document string) float64 {
	return MustNew().Characterize(document).FleschKincaidGradeLevel()
}

// FleschReadingEase characterizes document and returns its Flesch reading
// ease.
func FleschReadingEase(document string) float64 {
	return MustNew().Characterize(document).FleschReadingEase()
}

// LIX characterizes document and returns its LIX score.
func LIX(document string) float64 {
	return MustNew().Characterize(document).LIX()
}

// RIX characterizes document and returns its RIX score.
func RIX(document string) float64 {
	return MustNew().Characterize(document).RIX()
}

// ColemanLiau characterizes document and returns its Coleman-Liau index.
func ColemanLiau(document string) float64 {
	return MustNew().Characterize(document).ColemanLiau()
}

// AutomatedReadabilityIndex characterizes document and returns its ARI.
func AutomatedReadabilityIndex(document string) float64 {
	return MustNew().Characterize(document).AutomatedReadabilityIndex()
}

// LinsearWrite characterizes document and returns its Linsear Write score.
func LinsearWrite(document string) float64 {
	return MustNew().Characterize(document).LinsearWrite()
}
