package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// removeSelection drops the selection at a buffer position. Out-of-range
// positions are a silent no-op, so the response is 204 either way.
func (s *Service) removeSelection(ctx *gin.Context) {
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

	s.builder.RemoveSelection(index)

	ctx.Status(http.StatusNoContent)
}
