package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/builder"
)

type BuildPatternRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type BuildPatternResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Regex string `json:"regex"`
}

// buildPattern commits the selection buffer as a new Sequence pattern and
// returns its compiled regex. An empty buffer is a client error and
// performs no persistence write.
func (s *Service) buildPattern(ctx *gin.Context) {
	var req BuildPatternRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, regex, err := s.builder.BuildSequence(ctx, req.Name)
	if err != nil {
		if errors.Is(err, builder.ErrEmptySelection) {
			ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err))
			return
		}

		// save failure: the caller re-issues the build
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, BuildPatternResponse{
		ID:    seq.ID,
		Name:  seq.Name,
		Regex: regex,
	})
}
