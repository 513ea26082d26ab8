package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// clearSelections resets the selection buffer.
func (s *Service) clearSelections(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.builder.ClearSelections()

	ctx.Status(http.StatusNoContent)
}
