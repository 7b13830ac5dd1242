package readability

// Number is the set of element types Average accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Average returns the arithmetic mean of xs. An empty slice divides zero by
// zero and returns NaN; callers must not read that as a score of 0.
func Average[T Number](xs []T) float64 {
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// SentenceAverageWordCount returns the mean of per-sentence word counts.
func SentenceAverageWordCount(lengths []int) float64 {
	return Average(lengths)
}

// WordCount returns the number of words in list.
func WordCount(list []string) int {
	return len(list)
}
