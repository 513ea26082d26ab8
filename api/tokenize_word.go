package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/tokenizer"
)

type TokenizeWordRequest struct {
	Text     string `json:"text"`
	Position int    `json:"position" binding:"gte=0"`
}

type TokenizeWordResponse struct {
	Word tokenizer.WordToken `json:"word"`
}

// tokenizeWordAt resolves a rune position to the word run touching it,
// for click-to-select hosts.
func (s *Service) tokenizeWordAt(ctx *gin.Context) {
	var req TokenizeWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	word, ok := tokenizer.WordAt(req.Text, req.Position)
	if !ok {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrNoWordAt))
		return
	}

	ctx.JSON(http.StatusOK, TokenizeWordResponse{Word: word})
}
