package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/navicore/regexgen/builder"
	"github.com/navicore/regexgen/pattern"
	mockstore "github.com/navicore/regexgen/store/mock"
)

func TestTestPattern(t *testing.T) {
	one := uint32(1)

	// position 0: single word, 1: And composite, 2: rejected by the engine
	stored := []pattern.Pattern{
		pattern.Sequence{
			ID:   "seq-1",
			Name: "cats",
			Elements: []pattern.Element{
				pattern.Word{Text: "cat"},
			},
		},
		pattern.Composite{
			ID:       "comp-1",
			Name:     "cats and dogs",
			Operator: pattern.OpAnd,
			Patterns: []pattern.Pattern{
				pattern.Sequence{ID: "a", Name: "a", Elements: []pattern.Element{pattern.Word{Text: "cat"}}},
				pattern.Sequence{ID: "b", Name: "b", Elements: []pattern.Element{pattern.Word{Text: "dog"}}},
			},
		},
		pattern.Sequence{
			ID:   "seq-2",
			Name: "broken",
			Elements: []pattern.Element{
				pattern.Word{Text: "start"},
				pattern.Gap{MinWords: 3, MaxWords: &one},
				pattern.Word{Text: "end"},
			},
		},
	}

	testCases := []struct {
		name          string
		url           string
		body          any
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "AllOccurrences",
			url:  PatternsURL + "/0/test",
			body: TestPatternRequest{Text: "cat scat cat"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp TestPatternResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				require.Equal(t, []builder.MatchSpan{
					{Start: 0, End: 3},
					{Start: 9, End: 12},
				}, resp.Matches)
			},
		},
		{
			name: "ZeroMatchesIsStillAResult",
			url:  PatternsURL + "/0/test",
			body: TestPatternRequest{Text: "no felines here"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp TestPatternResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				require.NotNil(t, resp.Matches)
				require.Empty(t, resp.Matches)
			},
		},
		{
			name: "AndRequiresBothWords",
			url:  PatternsURL + "/1/test",
			body: TestPatternRequest{Text: "the dog chased the cat"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp TestPatternResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				require.Equal(t, []builder.MatchSpan{{Start: 0, End: 22}}, resp.Matches)
			},
		},
		{
			name: "AndRejectsTextMissingAWord",
			url:  PatternsURL + "/1/test",
			body: TestPatternRequest{Text: "the dog ran away"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp TestPatternResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				require.Empty(t, resp.Matches)
			},
		},
		{
			name: "OutOfRangeIs404",
			url:  PatternsURL + "/5/test",
			body: TestPatternRequest{Text: "cat"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrNoTestResult.Error(), res.Error)
			},
		},
		{
			name: "EngineRejectedPatternIs404",
			url:  PatternsURL + "/2/test",
			body: TestPatternRequest{Text: "start middle end"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrNoTestResult.Error(), res.Error)
			},
		},
		{
			name: "NotANumber",
			url:  PatternsURL + "/abc/test",
			body: TestPatternRequest{Text: "cat"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidIndex.Error(), res.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mockstore.NewMockStore(ctrl)
			s.EXPECT().Load(gomock.Any()).Times(1).Return(stored, nil)

			service := newTestService(t, s, nil)
			recorder := postJSON(t, service, tc.url, tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}
