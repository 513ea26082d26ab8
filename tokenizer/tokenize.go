package tokenizer

// Tokenize splits raw text into an ordered sequence of word tokens.
//
// Scans runes left to right; any maximal run of alphanumeric characters
// becomes one token. Every other character is a separator: it produces no
// token and is never merged into one.
func Tokenize(text string) []WordToken {
	runes := []rune(text)
	n := len(runes)

	var tokens []WordToken
	wordIndex := 0

	for p := 0; p < n; {
		// skip separators
		if !isWordRune(runes[p]) {
			p++
			continue
		}

		// consume the whole alphanumeric run
		start := p
		for p < n && isWordRune(runes[p]) {
			p++
		}

		tokens = append(tokens, WordToken{
			Text:      string(runes[start:p]),
			Start:     start,
			End:       p,
			WordIndex: wordIndex,
		})
		wordIndex++
	}

	return tokens
}

// WordAt expands left and right from position while characters are
// alphanumeric and returns the covered word token.
//
// Returns ok = false if position is out of bounds or no alphanumeric run
// touches it (start == end after expansion). A position on a separator
// directly after a word still resolves to that word, since the left
// expansion reaches it.
func WordAt(text string, position int) (tok WordToken, ok bool) {
	runes := []rune(text)
	n := len(runes)

	if position < 0 || position >= n {
		return WordToken{}, false
	}

	start, end := position, position

	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	for end < n && isWordRune(runes[end]) {
		end++
	}

	if start == end {
		return WordToken{}, false
	}

	tok = WordToken{
		Text:      string(runes[start:end]),
		Start:     start,
		End:       end,
		WordIndex: countWordsBefore(runes, start),
	}
	return tok, true
}

// countWordsBefore counts complete alphanumeric runs in runes[:limit].
// The run starting at limit is always maximal (its left neighbour is a
// separator or the text start), so the count is its word index.
func countWordsBefore(runes []rune, limit int) int {
	count := 0
	inWord := false
	for _, r := range runes[:limit] {
		if isWordRune(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
