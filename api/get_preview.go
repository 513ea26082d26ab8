package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/builder"
)

type PreviewResponse struct {
	Elements []builder.PreviewElement `json:"elements"`
}

// getPreview renders the buffered selection as display descriptors.
// The grouping is the segmenter's, the same one a build would commit.
func (s *Service) getPreview(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elements := s.builder.Preview()
	if elements == nil {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrEmptyPreview))
		return
	}

	ctx.JSON(http.StatusOK, PreviewResponse{Elements: elements})
}
