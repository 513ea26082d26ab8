package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/navicore/regexgen/pattern"
)

// selections over "the quick fox" at the given word indices
func selectionsAt(indices ...int) []SelectionSpan {
	words := map[int]SelectionSpan{
		0: {Text: "the", Start: 0, End: 3, WordIndex: 0},
		1: {Text: "quick", Start: 4, End: 9, WordIndex: 1},
		2: {Text: "fox", Start: 10, End: 13, WordIndex: 2},
	}

	var out []SelectionSpan
	for _, i := range indices {
		out = append(out, words[i])
	}
	return out
}

func TestSegment(t *testing.T) {
	testCases := []struct {
		name       string
		selections []SelectionSpan
		want       []pattern.Element
		wantErr    error
	}{
		{
			name:       "empty_selection_fails",
			selections: nil,
			wantErr:    ErrEmptySelection,
		},
		{
			name:       "single_word",
			selections: selectionsAt(1),
			want: []pattern.Element{
				pattern.Word{Text: "quick"},
			},
		},
		{
			name:       "consecutive_words_merge_into_one_phrase",
			selections: selectionsAt(0, 1, 2),
			want: []pattern.Element{
				pattern.Word{Text: "the quick fox"},
			},
		},
		{
			name:       "non_adjacent_words_get_a_gap",
			selections: selectionsAt(0, 2),
			want: []pattern.Element{
				pattern.Word{Text: "the"},
				pattern.Gap{MinWords: 0, MaxWords: nil},
				pattern.Word{Text: "fox"},
			},
		},
		{
			name:       "unordered_input_is_sorted_by_word_index",
			selections: selectionsAt(2, 0, 1),
			want: []pattern.Element{
				pattern.Word{Text: "the quick fox"},
			},
		},
		{
			name:       "unordered_adjacent_pair",
			selections: selectionsAt(1, 0),
			want: []pattern.Element{
				pattern.Word{Text: "the quick"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Segment(tc.selections)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSegmentDoesNotMutateInput(t *testing.T) {
	selections := selectionsAt(2, 0)
	original := make([]SelectionSpan, len(selections))
	copy(original, selections)

	_, err := Segment(selections)
	require.NoError(t, err)
	require.Equal(t, original, selections)
}

func TestPreview(t *testing.T) {
	testCases := []struct {
		name       string
		selections []SelectionSpan
		want       []PreviewElement
	}{
		{
			name:       "empty_selection_yields_nil",
			selections: nil,
			want:       nil,
		},
		{
			name:       "single_word",
			selections: selectionsAt(0),
			want: []PreviewElement{
				{Type: PreviewWord, Text: "the"},
			},
		},
		{
			name:       "merged_run_is_a_phrase",
			selections: selectionsAt(0, 1),
			want: []PreviewElement{
				{Type: PreviewPhrase, Text: "the quick"},
			},
		},
		{
			name:       "gap_renders_as_and",
			selections: selectionsAt(0, 2),
			want: []PreviewElement{
				{Type: PreviewWord, Text: "the"},
				{Type: PreviewAnd, Text: "AND"},
				{Type: PreviewWord, Text: "fox"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Preview(tc.selections))
		})
	}
}

// The preview must mirror the grouping a build would commit, phrase for
// phrase and gap for gap.
func TestPreviewMatchesSegmentGrouping(t *testing.T) {
	selections := selectionsAt(2, 0, 1)
	selections = append(selections, SelectionSpan{Text: "jumps", Start: 14, End: 19, WordIndex: 4})

	elements, err := Segment(selections)
	require.NoError(t, err)

	preview := Preview(selections)
	require.Len(t, preview, len(elements))

	for i, element := range elements {
		switch v := element.(type) {
		case pattern.Word:
			require.Equal(t, v.Text, preview[i].Text)
			require.Contains(t, []string{PreviewWord, PreviewPhrase}, preview[i].Type)
		case pattern.Gap:
			require.Equal(t, PreviewAnd, preview[i].Type)
		}
	}
}
