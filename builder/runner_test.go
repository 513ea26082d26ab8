package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/navicore/regexgen/pattern"
	mockstore "github.com/navicore/regexgen/store/mock"
)

func u32(v uint32) *uint32 {
	return &v
}

func wordSeq(id string, words ...string) pattern.Sequence {
	elements := make([]pattern.Element, 0, len(words)*2-1)
	for i, w := range words {
		if i > 0 {
			elements = append(elements, pattern.Gap{MinWords: 0})
		}
		elements = append(elements, pattern.Word{Text: w})
	}
	return pattern.Sequence{ID: id, Name: id, Elements: elements}
}

func TestRun(t *testing.T) {
	catAndDog := pattern.Composite{
		ID: "and", Name: "and",
		Operator: pattern.OpAnd,
		Patterns: []pattern.Pattern{wordSeq("c", "cat"), wordSeq("d", "dog")},
	}

	testCases := []struct {
		name      string
		pattern   pattern.Pattern
		text      string
		wantOK    bool
		wantSpans []MatchSpan
	}{
		{
			name:      "single_word_matches_all_occurrences",
			pattern:   wordSeq("p", "cat"),
			text:      "cat scat cat",
			wantOK:    true,
			wantSpans: []MatchSpan{{Start: 0, End: 3}, {Start: 9, End: 12}},
		},
		{
			name:      "word_boundary_blocks_substrings",
			pattern:   wordSeq("p", "cat"),
			text:      "concatenate scatter",
			wantOK:    true,
			wantSpans: []MatchSpan{},
		},
		{
			name:      "zero_matches_is_ok_with_empty_list",
			pattern:   wordSeq("p", "cat"),
			text:      "only dogs here",
			wantOK:    true,
			wantSpans: []MatchSpan{},
		},
		{
			name:      "and_matches_when_both_exist_in_any_order",
			pattern:   catAndDog,
			text:      "the dog chased the cat",
			wantOK:    true,
			wantSpans: []MatchSpan{{Start: 0, End: 22}},
		},
		{
			name:      "and_rejects_when_one_is_missing",
			pattern:   catAndDog,
			text:      "the dog ran away",
			wantOK:    true,
			wantSpans: []MatchSpan{},
		},
		{
			name: "ill_formed_bounded_gap_yields_no_result",
			pattern: pattern.Sequence{
				ID: "bad", Name: "bad",
				Elements: []pattern.Element{
					pattern.Word{Text: "a"},
					pattern.Gap{MinWords: 3, MaxWords: u32(1)}, // {3,1} is rejected by the engine
					pattern.Word{Text: "b"},
				},
			},
			text:   "a b",
			wantOK: false,
		},
		{
			name: "reference_matches_unconstrained_text",
			pattern: pattern.Sequence{
				ID: "ref", Name: "ref",
				Elements: []pattern.Element{
					pattern.Word{Text: "start"},
					pattern.Reference{PatternID: "whatever"},
				},
			},
			text:      "start and then anything at all",
			wantOK:    true,
			wantSpans: []MatchSpan{{Start: 0, End: 30}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spans, ok := Run(tc.pattern, tc.text)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.wantSpans, spans)
			}
		})
	}
}

func TestRunNotComposite(t *testing.T) {
	noCat := pattern.Composite{
		ID: "not", Name: "not",
		Operator: pattern.OpNot,
		Patterns: []pattern.Pattern{wordSeq("c", "cat")},
	}

	spans, ok := Run(noCat, "dogs only")
	require.True(t, ok)
	require.NotEmpty(t, spans, "negative lookahead alone matches at positions where cat does not follow")

	spans, ok = Run(noCat, "cat")
	require.True(t, ok)
	// at position 0 the lookahead fails; later positions no longer see "cat" ahead
	require.NotContains(t, spans, MatchSpan{Start: 0, End: 0})
}

func TestTestPatternByPosition(t *testing.T) {
	stored := []pattern.Pattern{
		wordSeq("a", "cat"),
		pattern.Sequence{
			ID: "bad", Name: "bad",
			Elements: []pattern.Element{pattern.Gap{MinWords: 3, MaxWords: u32(1)}},
		},
	}

	ctrl := gomock.NewController(t)
	s := mockstore.NewMockStore(ctrl)
	s.EXPECT().Load(gomock.Any()).Times(1).Return(stored, nil)
	b := New(context.Background(), s, nil)

	t.Run("valid_position", func(t *testing.T) {
		spans, ok := b.TestPattern(0, "a cat sat")
		require.True(t, ok)
		require.Equal(t, []MatchSpan{{Start: 2, End: 5}}, spans)
	})

	t.Run("out_of_range_position_is_no_result", func(t *testing.T) {
		_, ok := b.TestPattern(2, "a cat sat")
		require.False(t, ok)

		_, ok = b.TestPattern(-1, "a cat sat")
		require.False(t, ok)
	})

	t.Run("engine_rejected_pattern_is_no_result", func(t *testing.T) {
		_, ok := b.TestPattern(1, "anything")
		require.False(t, ok)
	})
}
