package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddSelectionRequest struct {
	Text      string `json:"text" binding:"required"`
	Start     int    `json:"start_index" binding:"gte=0"`
	End       int    `json:"end_index" binding:"gtefield=Start"`
	WordIndex int    `json:"word_index" binding:"gte=0"`
}

type SelectionCountResponse struct {
	Count int `json:"count"`
}

// addSelection appends one host-reported selection to the buffer.
func (s *Service) addSelection(ctx *gin.Context) {
	var req AddSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.builder.AddSelection(req.Text, req.Start, req.End, req.WordIndex)

	ctx.JSON(http.StatusCreated, SelectionCountResponse{Count: len(s.builder.Selections())})
}
