package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/builder"
)

type TestPatternRequest struct {
	Text string `json:"text"`
}

type TestPatternResponse struct {
	Matches []builder.MatchSpan `json:"matches"`
}

// testPattern runs the stored pattern at a list position against sample
// text. "No result" (bad position, or the compiled form was rejected by
// the engine) is 404; a valid pattern with zero matches is 200 with an
// empty array. The two are not the same thing.
func (s *Service) testPattern(ctx *gin.Context) {
	indexRaw := ctx.Param("index")

	index, err := strconv.Atoi(indexRaw)
	if err != nil {
		errField := ErrorField{"index", "not a valid list position: " + indexRaw}
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidIndex, errField))
		return
	}

	var req TestPatternRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	spans, ok := s.builder.TestPattern(index, req.Text)
	if !ok {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrNoTestResult))
		return
	}

	ctx.JSON(http.StatusOK, TestPatternResponse{Matches: spans})
}
