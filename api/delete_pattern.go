package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// deletePattern removes the pattern at a list position and saves the
// list. Out-of-range positions are a silent no-op, so 204 either way.
func (s *Service) deletePattern(ctx *gin.Context) {
	indexRaw := ctx.Param("index")

	index, err := strconv.Atoi(indexRaw)
	if err != nil {
		errField := ErrorField{"index", "not a valid list position: " + indexRaw}
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidIndex, errField))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.builder.DeletePattern(ctx, index); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
