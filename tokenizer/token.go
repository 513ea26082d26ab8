package tokenizer

import "unicode"

// WordToken is a maximal run of alphanumeric characters in source text.
//
// Offsets are rune positions, not byte positions: the host renders text
// character by character and reports selections the same way, so every
// index that crosses the API boundary counts runes.
type WordToken struct {
	// Text is the exact run of alphanumeric characters at [Start, End).
	Text string `json:"text"`

	// Start is the inclusive rune position of the run's first character.
	Start int `json:"start_index"`

	// End is the exclusive rune position one past the run's last character.
	End int `json:"end_index"`

	// WordIndex is the token's sequential number in the source text,
	// starting at 0 and incrementing once per emitted token.
	WordIndex int `json:"word_index"`
}

// isWordRune reports whether r belongs to a word run.
// Matches Unicode letters and digits, same set the compiled
// regexes treat as word characters.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
