package builder

import (
	"errors"
	"sort"
	"strings"

	"github.com/navicore/regexgen/pattern"
)

// ErrEmptySelection is returned when a pattern build or preview is
// attempted with no buffered selections.
var ErrEmptySelection = errors.New("no selections to build pattern from")

// Segment turns an unordered collection of selections into the ordered
// element sequence [phrase, (gap, phrase)*].
//
// Selections are sorted by word index and grouped into maximal runs of
// consecutive indices. Each run becomes one Word element; a multi-token
// run becomes a single literal phrase, its texts joined by one space.
// Between two runs (never inside one) an open-ended gap expresses the
// "anything in between" relationship of non-adjacent phrases.
//
// Both pattern construction and preview rendering go through Segment, so
// a preview can never diverge from what gets committed.
func Segment(selections []SelectionSpan) ([]pattern.Element, error) {
	if len(selections) == 0 {
		return nil, ErrEmptySelection
	}

	sorted := make([]SelectionSpan, len(selections))
	copy(sorted, selections)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WordIndex < sorted[j].WordIndex
	})

	var elements []pattern.Element

	i := 0
	for i < len(sorted) {
		// collect the maximal run of adjacent word indices
		j := i + 1
		for j < len(sorted) && sorted[j].WordIndex == sorted[j-1].WordIndex+1 {
			j++
		}

		texts := make([]string, 0, j-i)
		for _, s := range sorted[i:j] {
			texts = append(texts, s.Text)
		}
		elements = append(elements, pattern.Word{Text: strings.Join(texts, " ")})

		// a gap goes between runs only
		if j < len(sorted) {
			elements = append(elements, pattern.Gap{MinWords: 0, MaxWords: nil})
		}

		i = j
	}

	return elements, nil
}

// preview descriptor kinds
const (
	PreviewWord   = "word"
	PreviewPhrase = "phrase"
	PreviewAnd    = "and"
)

// PreviewElement is a labeled descriptor for human display only.
type PreviewElement struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Preview renders the segmented selection as display descriptors:
// {word|phrase, text} per phrase and {and, "AND"} per inserted gap.
// Returns nil when the selection is empty. Never mutates the selection.
func Preview(selections []SelectionSpan) []PreviewElement {
	elements, err := Segment(selections)
	if err != nil {
		return nil
	}

	preview := make([]PreviewElement, 0, len(elements))
	for _, element := range elements {
		switch v := element.(type) {
		case pattern.Word:
			kind := PreviewWord
			if strings.Contains(v.Text, " ") {
				kind = PreviewPhrase
			}
			preview = append(preview, PreviewElement{Type: kind, Text: v.Text})
		case pattern.Gap:
			preview = append(preview, PreviewElement{Type: PreviewAnd, Text: "AND"})
		}
	}

	return preview
}
