package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/tokenizer"
)

type TokenizeRequest struct {
	// Text may be empty; tokenizing it yields an empty word list.
	Text string `json:"text"`
}

type TokenizeResponse struct {
	Words []tokenizer.WordToken `json:"words"`
}

// tokenizeText splits raw text into word tokens so the host can render
// selectable words. Pure; touches no builder state.
func (s *Service) tokenizeText(ctx *gin.Context) {
	var req TokenizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	words := tokenizer.Tokenize(req.Text)
	if words == nil {
		words = []tokenizer.WordToken{}
	}

	ctx.JSON(http.StatusOK, TokenizeResponse{Words: words})
}
