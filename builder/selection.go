package builder

// SelectionSpan is a user-designated span of source text tied to a
// specific tokenized word position. The host derives it from tokenizer
// output; offsets are rune positions.
type SelectionSpan struct {
	Text      string `json:"text"`
	Start     int    `json:"start_index"`
	End       int    `json:"end_index"`
	WordIndex int    `json:"word_index"`
}
